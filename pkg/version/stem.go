package version

import (
	"path"
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Compound archive extensions are stripped as a single unit, so the stem of
// "foo-1.2.tar.gz" is "foo-1.2", not "foo-1.2.tar".
var (
	archiveFormats     = sets.NewString("tar", "cpio", "pax")
	archiveCompressors = sets.NewString("gz", "bz2", "lz", "xz", "zst", "Z")
)

// SourceForge serves "<project>-<version>.<ext>/download" redirector URLs;
// the interesting name is the parent directory, not the trailing segment.
var sourceForgeDownload = regexp.MustCompile(`(?:sourceforge\.net|sf\.net)/.*/download$`)

var alphaExt = regexp.MustCompile(`^\.[a-zA-Z]+$`)

// splitExtension splits a basename into its stem and its extension.  Only a
// recognizable extension is split off: an all-letter one ("zip", "tgz"), a
// compound archive one ("tar.gz"), or the special-cased "7z".  A trailing
// dot-run of version data ("waf-1.8.12", "5.0.0-alpha10") is not an
// extension and is kept in the stem.
func splitExtension(base string) (string, string) {
	ext := path.Ext(base)
	rest := strings.TrimSuffix(base, ext)
	if ext == "" || rest == "" {
		return base, ""
	}
	if inner := path.Ext(rest); inner != "" &&
		archiveFormats.Has(strings.ToLower(strings.TrimPrefix(inner, "."))) &&
		archiveCompressors.Has(strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(rest, inner), inner + ext
	}
	if ext != ".7z" && !alphaExt.MatchString(ext) {
		return base, ""
	}
	return rest, ext
}

// stem derives the basename a filename-style extraction rule is matched
// against: the last path segment of the spec with any query/fragment suffix
// and at most one recognized (possibly compound) extension removed.
func stem(spec string) string {
	if i := strings.IndexAny(spec, "?#"); i >= 0 {
		spec = spec[:i]
	}
	switch {
	case strings.HasSuffix(spec, "/"):
		// A directory reference has no extension to strip.
		return path.Base(spec)
	case sourceForgeDownload.MatchString(spec):
		st, _ := splitExtension(path.Base(path.Dir(spec)))
		return st
	default:
		st, _ := splitExtension(path.Base(spec))
		return st
	}
}
