package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateReportRequest(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateReportRequest
		wantErr bool
	}{
		{
			name:    "valid otp theft report",
			req:     CreateReportRequest{Number: "9841234567", Category: "otp_theft", Message: "asked for my OTP"},
			wantErr: false,
		},
		{
			name:    "unknown category",
			req:     CreateReportRequest{Number: "9841234567", Category: "telemarketing", Message: "spam calls"},
			wantErr: true,
		},
		{
			name:    "message only whitespace",
			req:     CreateReportRequest{Number: "9841234567", Category: "other", Message: "   \n\t  "},
			wantErr: true,
		},
		{
			name:    "message too long",
			req:     CreateReportRequest{Number: "9841234567", Category: "other", Message: strings.Repeat("a", 2001)},
			wantErr: true,
		},
		{
			// 2000 Devanagari runes are 6000 bytes; rune counting admits them
			name:    "multibyte message at the limit",
			req:     CreateReportRequest{Number: "9841234567", Category: "other", Message: strings.Repeat("क", 2000)},
			wantErr: false,
		},
		{
			name:    "multibyte message over the limit",
			req:     CreateReportRequest{Number: "9841234567", Category: "other", Message: strings.Repeat("क", 2001)},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreateReportRequest(&tc.req)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateTrimsMessage(t *testing.T) {
	req := CreateReportRequest{Number: "9841234567", Category: "other", Message: "  send me your OTP  "}
	require.NoError(t, ValidateCreateReportRequest(&req))
	assert.Equal(t, "send me your OTP", req.Message)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("OTP Theft Attempt").Valid())
}
