package domain

import (
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// Provider identifies the external issue tracker / VCS host.
type Provider string

const (
	ProviderGitHub Provider = "github"
	ProviderGitLab Provider = "gitlab"
)

// IsValid returns true if the provider is a known value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderGitHub, ProviderGitLab:
		return true
	default:
		return false
	}
}

// ParseProvider converts a string into a Provider, rejecting unknown hosts.
func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	if !p.IsValid() {
		return "", &ReferenceError{Field: "provider", Value: s, Err: ErrInvalidProvider}
	}
	return p, nil
}

// refDelimiter separates the three segments of a canonical reference.
// Git ref-name grammar already forbids ':', so branch names never collide
// with the delimiter.
const refDelimiter = ":"

// maxBranchNameLen bounds branch names in canonical references.
const maxBranchNameLen = 200

// validateRepo checks the "owner/repo" shape: exactly one '/', no ':',
// and non-empty halves.
func validateRepo(repo string) error {
	bad := repo == "" ||
		strings.Count(repo, "/") != 1 ||
		strings.Contains(repo, refDelimiter) ||
		strings.HasPrefix(repo, "/") ||
		strings.HasSuffix(repo, "/")
	if bad {
		return &ReferenceError{Field: "repository", Value: repo, Err: ErrInvalidRepository}
	}
	return nil
}

// splitRef splits a canonical reference into its three segments.
// It rejects inputs with the wrong number of delimiters or empty segments.
func splitRef(s string) (provider, repo, ident string, err error) {
	parts := strings.Split(s, refDelimiter)
	if len(parts) != 3 {
		return "", "", "", &ReferenceError{Field: "reference", Value: s, Err: ErrMalformedReference}
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", &ReferenceError{Field: "reference", Value: s, Err: ErrMalformedReference}
		}
	}
	return parts[0], parts[1], parts[2], nil
}

// parseRefNumber parses a positive decimal identifier segment.
// Signs and non-digit characters are rejected so that parsing stays a strict
// inverse of encoding.
func parseRefNumber(ident, field string, sentinel error) (int64, error) {
	if ident == "" || ident[0] < '0' || ident[0] > '9' {
		return 0, &ReferenceError{Field: field, Value: ident, Err: sentinel}
	}
	n, err := strconv.ParseInt(ident, 10, 64)
	if err != nil || n <= 0 {
		return 0, &ReferenceError{Field: field, Value: ident, Err: sentinel}
	}
	return n, nil
}

// IssueRef identifies an issue on an external tracker.
// Refs are equal iff all three fields are equal; the struct is comparable
// and usable as a map key.
type IssueRef struct {
	Provider Provider
	Repo     string // "owner/repo"
	Number   int64
}

// NewIssueRef validates the parts and builds an IssueRef.
func NewIssueRef(provider, repo string, number int64) (IssueRef, error) {
	p, err := ParseProvider(provider)
	if err != nil {
		return IssueRef{}, err
	}
	if err := validateRepo(repo); err != nil {
		return IssueRef{}, err
	}
	if number <= 0 {
		return IssueRef{}, &ReferenceError{Field: "issue", Value: strconv.FormatInt(number, 10), Err: ErrInvalidIssueNumber}
	}
	return IssueRef{Provider: p, Repo: repo, Number: number}, nil
}

// ParseIssueRef parses the canonical "<provider>:<owner>/<repo>:<number>" form.
func ParseIssueRef(s string) (IssueRef, error) {
	provider, repo, ident, err := splitRef(s)
	if err != nil {
		return IssueRef{}, err
	}
	number, err := parseRefNumber(ident, "issue", ErrInvalidIssueNumber)
	if err != nil {
		return IssueRef{}, err
	}
	return NewIssueRef(provider, repo, number)
}

// Canonical returns the authoritative string encoding, used for storage and
// lookup keys.
func (r IssueRef) Canonical() string {
	return string(r.Provider) + refDelimiter + r.Repo + refDelimiter + strconv.FormatInt(r.Number, 10)
}

func (r IssueRef) String() string {
	return r.Canonical()
}

// Validate re-checks a ref built without NewIssueRef (e.g. decoded from storage).
func (r IssueRef) Validate() error {
	_, err := NewIssueRef(string(r.Provider), r.Repo, r.Number)
	return err
}

// IsZero returns true for the zero value.
func (r IssueRef) IsZero() bool {
	return r == IssueRef{}
}

// Compare orders refs by provider, then repository, then number.
func (r IssueRef) Compare(other IssueRef) int {
	if c := strings.Compare(string(r.Provider), string(other.Provider)); c != 0 {
		return c
	}
	if c := strings.Compare(r.Repo, other.Repo); c != 0 {
		return c
	}
	switch {
	case r.Number < other.Number:
		return -1
	case r.Number > other.Number:
		return 1
	default:
		return 0
	}
}

// BranchRef identifies a branch on an external VCS host.
type BranchRef struct {
	Provider Provider
	Repo     string // "owner/repo"
	Name     string // branch name, e.g. "feature/branch-tracking"
}

// NewBranchRef validates the parts and builds a BranchRef.
// The branch name is trimmed, must not contain the delimiter, is capped at
// 200 characters, and must be a valid git branch name.
func NewBranchRef(provider, repo, name string) (BranchRef, error) {
	p, err := ParseProvider(provider)
	if err != nil {
		return BranchRef{}, err
	}
	if err := validateRepo(repo); err != nil {
		return BranchRef{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxBranchNameLen || strings.Contains(name, refDelimiter) {
		return BranchRef{}, &ReferenceError{Field: "branch", Value: name, Err: ErrInvalidBranchName}
	}
	if err := plumbing.NewBranchReferenceName(name).Validate(); err != nil {
		return BranchRef{}, &ReferenceError{Field: "branch", Value: name, Err: ErrInvalidBranchName}
	}
	return BranchRef{Provider: p, Repo: repo, Name: name}, nil
}

// ParseBranchRef parses the canonical "<provider>:<owner>/<repo>:<branch>" form.
func ParseBranchRef(s string) (BranchRef, error) {
	provider, repo, name, err := splitRef(s)
	if err != nil {
		return BranchRef{}, err
	}
	return NewBranchRef(provider, repo, name)
}

// Canonical returns the authoritative string encoding.
func (r BranchRef) Canonical() string {
	return string(r.Provider) + refDelimiter + r.Repo + refDelimiter + r.Name
}

func (r BranchRef) String() string {
	return r.Canonical()
}

// Validate re-checks a ref built without NewBranchRef.
func (r BranchRef) Validate() error {
	_, err := NewBranchRef(string(r.Provider), r.Repo, r.Name)
	return err
}

// Compare orders refs by provider, then repository, then name.
func (r BranchRef) Compare(other BranchRef) int {
	if c := strings.Compare(string(r.Provider), string(other.Provider)); c != 0 {
		return c
	}
	if c := strings.Compare(r.Repo, other.Repo); c != 0 {
		return c
	}
	return strings.Compare(r.Name, other.Name)
}

// PullRequestRef identifies a pull request on an external VCS host.
type PullRequestRef struct {
	Provider Provider
	Repo     string // "owner/repo"
	Number   int64
}

// NewPullRequestRef validates the parts and builds a PullRequestRef.
func NewPullRequestRef(provider, repo string, number int64) (PullRequestRef, error) {
	p, err := ParseProvider(provider)
	if err != nil {
		return PullRequestRef{}, err
	}
	if err := validateRepo(repo); err != nil {
		return PullRequestRef{}, err
	}
	if number <= 0 {
		return PullRequestRef{}, &ReferenceError{Field: "pull_request", Value: strconv.FormatInt(number, 10), Err: ErrInvalidPullRequestNumber}
	}
	return PullRequestRef{Provider: p, Repo: repo, Number: number}, nil
}

// ParsePullRequestRef parses the canonical "<provider>:<owner>/<repo>:<number>" form.
func ParsePullRequestRef(s string) (PullRequestRef, error) {
	provider, repo, ident, err := splitRef(s)
	if err != nil {
		return PullRequestRef{}, err
	}
	number, err := parseRefNumber(ident, "pull_request", ErrInvalidPullRequestNumber)
	if err != nil {
		return PullRequestRef{}, err
	}
	return NewPullRequestRef(provider, repo, number)
}

// Canonical returns the authoritative string encoding.
func (r PullRequestRef) Canonical() string {
	return string(r.Provider) + refDelimiter + r.Repo + refDelimiter + strconv.FormatInt(r.Number, 10)
}

func (r PullRequestRef) String() string {
	return r.Canonical()
}

// Validate re-checks a ref built without NewPullRequestRef.
func (r PullRequestRef) Validate() error {
	_, err := NewPullRequestRef(string(r.Provider), r.Repo, r.Number)
	return err
}

// Compare orders refs by provider, then repository, then number.
func (r PullRequestRef) Compare(other PullRequestRef) int {
	if c := strings.Compare(string(r.Provider), string(other.Provider)); c != 0 {
		return c
	}
	if c := strings.Compare(r.Repo, other.Repo); c != 0 {
		return c
	}
	switch {
	case r.Number < other.Number:
		return -1
	case r.Number > other.Number:
		return 1
	default:
		return 0
	}
}
