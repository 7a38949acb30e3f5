package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUpdateRequest_Validate(t *testing.T) {
	cases := []struct {
		body    string
		wantErr bool
	}{
		{`{}`, false},
		{`{"email": null, "username": null}`, false},
		{`{"username": "alicia"}`, false},
		{`{"email": "alicia@example.com"}`, false},
		{`{"email": "not-an-email"}`, true},
		{`{"email": ""}`, true},
		{`{"username": ""}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			var req UserUpdateRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			if tc.wantErr {
				assert.Error(t, req.Validate())
			} else {
				assert.NoError(t, req.Validate())
			}
		})
	}
}
