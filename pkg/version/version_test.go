package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		gitSHA    string
		buildTime string
		expect    string
	}{
		{
			name:    "dev",
			version: "dev",
			expect:  "dev",
		},
		{
			name:      "release",
			version:   "1.2.0",
			gitSHA:    "0123456789abcdef",
			buildTime: "2026-10-19T08:00:00Z",
			expect:    "1.2.0 (0123456) built 2026-10-19T08:00:00Z",
		},
		{
			name:      "unparseable build time",
			version:   "1.2.0",
			buildTime: "yesterday",
			expect:    "1.2.0 built yesterday",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			version, gitSHA, buildTime = test.version, test.gitSHA, test.buildTime
			build = Build{}
			Init()
			require.Equal(t, test.expect, String())
			require.Equal(t, test.version, Version())
		})
	}
}
