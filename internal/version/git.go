package version

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Version represents a semantic version derived from git tags
type Version struct {
	Major       int
	Minor       int
	Patch       string
	GitDescribe string
	IsDirty     bool
}

// String returns the version as a string
func (v *Version) String() string {
	s := fmt.Sprintf("%d.%d.%s", v.Major, v.Minor, v.Patch)
	if v.IsDirty {
		s += "-dirty"
	}
	return s
}

var describeRe = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)(?:-(\d+)-g([0-9a-f]+))?$`)

// GetFromGit derives the version from git describe output.
// Format: v0.1.0 or v0.1.0-5-g1a2b3c4
func GetFromGit(dir string) (*Version, error) {
	cmd := exec.Command("git", "describe", "--tags", "--match", "v*.*.*")
	cmd.Dir = dir
	output, err := cmd.Output()

	describe := "v0.1.0"
	if err == nil {
		describe = strings.TrimSpace(string(output))
	}

	v := &Version{Major: 0, Minor: 1, Patch: "0", GitDescribe: describe}

	if m := describeRe.FindStringSubmatch(describe); m != nil {
		fmt.Sscanf(m[1], "%d", &v.Major)
		fmt.Sscanf(m[2], "%d", &v.Minor)
		v.Patch = m[3]
		// commits after the tag become part of the patch component
		if m[4] != "" {
			v.Patch = fmt.Sprintf("%s-%s", v.Patch, m[4])
		}
	}

	cmd = exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	output, err = cmd.Output()
	if err == nil && len(strings.TrimSpace(string(output))) > 0 {
		v.IsDirty = true
	}

	return v, nil
}

// IsGitRepo checks if the directory is a git repository
func IsGitRepo(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}
