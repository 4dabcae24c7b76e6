package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	t.Parallel()
	testcases := map[string]string{
		"https://example.com/foo-1.2.tar.gz":          "foo-1.2",
		"https://example.com/foo-1.2.tar.bz2":         "foo-1.2",
		"https://example.com/foo-1.2.zip":             "foo-1.2",
		"https://example.com/foo-1.2.tar.gz?raw=true": "foo-1.2",
		"https://example.com/foo-1.2.tar.gz#frag":     "foo-1.2",
		"https://example.com/foo-1.2/":                "foo-1.2",

		// SourceForge redirectors name the artifact in the parent dir.
		"https://sourceforge.net/projects/foo/files/foo-1.2.tar.gz/download": "foo-1.2",
		"https://downloads.sf.net/project/foo/foo-1.2.zip/download":          "foo-1.2",

		// A trailing dot-run of version data is not an extension.
		"waf-1.8.12":                       "waf-1.8.12",
		"5.0.0-alpha10":                    "5.0.0-alpha10",
		"https://waf.io/waf-1.8.12":        "waf-1.8.12",
		"cli-1.3.0-beta.1.tgz":             "cli-1.3.0-beta.1",
		"https://example.com/foo-1.2.7z":   "foo-1.2",
		"jpegsrc.v8d.tar.gz":               "jpegsrc.v8d",
		"boost_1_39_0.tar.bz2":             "boost_1_39_0",
		"mtools-4.0.18-1.i686.rpm":         "mtools-4.0.18-1.i686",
		"2023-09-28":                       "2023-09-28",
	}
	for tcName, tcData := range testcases {
		tcName := tcName
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tcData, stem(tcName))
		})
	}
}
