package version

import (
	"net/url"
	"regexp"
	"strings"
)

// ruleMode says what part of the spec an extraction rule is matched
// against.
type ruleMode int

const (
	// matchSpec applies the pattern to the whole normalized spec, so the
	// scheme, host, path, and query are all visible to it.
	matchSpec ruleMode = iota
	// matchStem applies the pattern to the basename of the spec with the
	// query/fragment and the (possibly compound) extension removed.
	matchStem
)

// extractionRule is one heuristic in the cascade.  The first capture group
// of the pattern is the candidate version substring.
type extractionRule struct {
	mode      ruleMode
	pattern   *regexp.Regexp
	transform func(string) string
}

func underscoresToDots(s string) string {
	return strings.ReplaceAll(s, "_", ".")
}

// extractionRules is tried in order; the first rule producing a non-empty
// capture wins.  The order is load-bearing: several rules can match the
// same input, and moving an entry changes what gets detected.  Each entry
// is a hand-tuned special case for a real-world naming convention, not a
// general algorithm.
var extractionRules = []extractionRule{
	// date-based versioning
	// e.g. ltopers-v2017-04-14.tar.gz
	// e.g. project-2023-09-28.tar.gz
	{matchStem, regexp.MustCompile(`(?:^|[-_])v?(\d{4}-\d{2}-\d{2})`), nil},

	// GitHub tarballs
	// e.g. https://github.com/foo/bar/tarball/v1.2.3
	// e.g. https://github.com/sam-github/libnet/tarball/libnet-1.1.4
	// e.g. https://github.com/isaacs/npm/tarball/v0.2.5-1
	// e.g. https://github.com/petdance/ack/tarball/1.93_02
	{matchSpec, regexp.MustCompile(`github\.com/[^/]+/[^/]+/(?:zip|tar)ball/(?:v|\w+-)?((?:\d+[._-])+\d*)$`), underscoresToDots},

	// Erlang/OTP style tags
	// e.g. https://github.com/erlang/otp/tarball/OTP_R15B01
	{matchSpec, regexp.MustCompile(`(?:^|[-_])([Rr]\d+[AaBb]\d*(?:-\d+)?)`), nil},

	// underscore-separated digits
	// e.g. boost_1_39_0.tar.bz2
	{matchStem, regexp.MustCompile(`((?:\d+_)+\d+)$`), underscoresToDots},

	// patchlevel or release-number suffix, optionally followed by a
	// packaging qualifier
	// e.g. ruby-1.9.1-p243.tar.gz
	// e.g. foobar-4.5.1-1.tar.gz
	// e.g. unrtf_0.20.4-1.tar.gz
	// e.g. erlang-17.0-rc1-src.tar.gz
	{matchStem, regexp.MustCompile(`(?:^|[-_])((?:\d+\.)*\d+\.\d+-(?:p|rc|RC)?\d+)(?:[-._](?i:bin|dist|stable|src|sources?|final|full))?$`), nil},

	// Win32/Win64-qualified names
	// e.g. https://ftpmirror.gnu.org/libidn/libidn-1.29-win64.zip
	// e.g. https://ftpmirror.gnu.org/libmicrohttpd/libmicrohttpd-0.9.17-w32.zip
	{matchStem, regexp.MustCompile(`(?:^|[-_])((?:\d+\.)*\d+)[-_](?i:w(?:in)?(?:32|64))$`), nil},

	// OPAM packages
	// e.g. https://opam.ocaml.org/archives/sha.1.9+opam.tar.gz
	{matchStem, regexp.MustCompile(`\.(\d+\.\d+(?:\.\d+)?)\+opam$`), nil},

	// CPU-architecture-qualified names
	// e.g. https://ftpmirror.gnu.org/mtools/mtools-4.0.18-1.i686.rpm
	// e.g. https://ftpmirror.gnu.org/autogen/autogen-5.5.7-5.i386.rpm
	// e.g. https://ftpmirror.gnu.org/libtasn1/libtasn1-2.8-x86.zip
	// e.g. app-1.2.3-x86_64.tar.gz
	{matchStem, regexp.MustCompile(`(?:^|[-_])((?:\d+\.)+\d+(?:-\d+)?)[-_.](?i:i[36]86|x86(?:[-_](?:32|64))?|x64(?:[-_](?:32|64))?|amd64|arm64|aarch64)$`), nil},

	// OS-qualified names
	// e.g. tool-1.2.3-linux-x86_64.tar.gz
	// e.g. tool_0.9.0_darwin_amd64.tar.gz
	{matchStem, regexp.MustCompile(`(?:^|[-_])v?((?:\d+\.)+\d+)[-_.](?i:apple|darwin|linux|macos|osx|freebsd|openbsd|netbsd|windows)(?:[-._].*)?$`), nil},

	// prerelease-suffixed names, with or without a trailing qualifier
	// e.g. https://registry.npmjs.org/@angular/cli/-/cli-1.3.0-beta.1.tgz
	// e.g. https://github.com/dlang/dmd/archive/v2.074.0-beta1.tar.gz
	// e.g. https://github.com/dlang/dmd/archive/v2.074.0-rc1.tar.gz
	// e.g. premake-5.0.0-alpha10-src.zip
	// e.g. foobar-4.50-beta.tar.gz
	{matchStem, regexp.MustCompile(`[-.vV]?((?:\d+\.)+\d+[-_.]?(?i:alpha|beta|pre|rc)\.?\d{0,2})`), nil},

	// post-release suffix
	// e.g. pip-1.2.3.post4.tar.gz
	{matchStem, regexp.MustCompile(`[-_vV]?((?:\d+\.)+\d+\.post\d+)$`), nil},

	// single-letter or release-candidate revision glued to the version
	// e.g. foobar-4.5.1b12.tar.gz
	{matchStem, regexp.MustCompile(`(?:^|[-_])v?((?:\d+\.)+\d+(?:[abc]|rc|RC)\d+)$`), nil},

	// the generic case: a dotted version at the end of the stem,
	// optionally preceded by "v" and followed by a packaging qualifier
	// e.g. https://github.com/org/project/archive/v1.2.3.tar.gz
	// e.g. https://ftpmirror.gnu.org/mtools/mtools-4.0.18.tar.gz
	// e.g. openssl-1.0.1g.tar.gz
	// e.g. foobar-4.5.1-bin.tar.gz
	{matchStem, regexp.MustCompile(`[-_vV]?((?:\d+\.)+\d+[a-z]?)(?:[-._](?i:bin|dist|stable|src|sources?|final|full))?$`), nil},

	// URLs with no real extension; late so it cannot steal a trailing
	// fragment from the stem rules above
	// e.g. https://waf.io/waf-1.8.12
	// e.g. https://codeload.github.com/gsamokovarov/jump/tar.gz/v0.7.1
	{matchSpec, regexp.MustCompile(`[-vV]((?:\d+\.)*\d+)$`), nil},

	// jpeg style
	// e.g. http://www.ijg.org/files/jpegsrc.v8d.tar.gz
	{matchStem, regexp.MustCompile(`\.v(\d+[a-z]?)$`), nil},

	// dashed build numbers
	// e.g. lame-398-1.tar.gz
	{matchStem, regexp.MustCompile(`(?:^|[-_])(\d+-\d+)$`), nil},

	// trailing bare number
	// e.g. fontforge_full-20230101.tar.gz
	{matchStem, regexp.MustCompile(`[-_](\d+[a-z]?)$`), nil},

	// a dotted version anywhere in the stem
	// e.g. foobar4.5.1.tar.gz
	{matchStem, regexp.MustCompile(`((?:\d+\.)+\d+)`), nil},

	// a stem that is nothing but a version, as a last resort; this also
	// keeps parse() idempotent over its own outputs
	// e.g. 8d, 28, 1.2.3a
	{matchStem, regexp.MustCompile(`^v?(\d+(?:\.\d+)*[a-z]?)$`), nil},
}

// Detect infers a version from an opaque spec, typically a download URL or
// file name.  When fromURL is set, the spec is percent-decoded first; a
// malformed encoding silently falls back to the raw string.  Detect returns
// the null Version when no rule captures anything.
func Detect(spec string, fromURL bool) Version {
	if fromURL {
		if decoded, err := url.PathUnescape(spec); err == nil {
			spec = decoded
		}
	}
	st := stem(spec)
	for _, rule := range extractionRules {
		target := spec
		if rule.mode == matchStem {
			target = st
		}
		match := rule.pattern.FindStringSubmatch(target)
		if match == nil || match[1] == "" {
			continue
		}
		capture := match[1]
		if rule.transform != nil {
			capture = rule.transform(capture)
		}
		ver, err := New(capture)
		if err != nil {
			continue
		}
		return ver
	}
	return Version{}
}

// Parse runs the extraction heuristics over a literal version string (no
// percent-decoding).  The result may be a rewritten form of the input,
// e.g. "1_2_3" becomes "1.2.3".  Parse returns the null Version when the
// input is empty or nothing can be extracted.
func Parse(s string) Version {
	return Detect(s, false)
}
