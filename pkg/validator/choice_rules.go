package validator

import (
	"errors"
	"slices"

	"golang.org/x/text/cases"
)

// InclusionConfig requires every value to be one of In.
type InclusionConfig struct {
	In              []string
	CaseInsensitive bool
}

func (InclusionConfig) Kind() Kind { return KindInclusion }

func (c InclusionConfig) validate() error {
	if len(c.In) == 0 {
		return errors.New("in must list at least one value")
	}
	return nil
}

func (c InclusionConfig) check(in Input) (failure, bool) {
	if len(in.Values) == 0 {
		if !contains(c.In, "", c.CaseInsensitive) {
			return failure{key: MsgInclusion}, true
		}
		return failure{}, false
	}
	for _, v := range in.Values {
		if !contains(c.In, v, c.CaseInsensitive) {
			return failure{key: MsgInclusion}, true
		}
	}
	return failure{}, false
}

// Inclusion validates that a value belongs to a fixed set.
func Inclusion(cfg InclusionConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}

// ExclusionConfig rejects any value listed in In.
type ExclusionConfig struct {
	In              []string
	CaseInsensitive bool
}

func (ExclusionConfig) Kind() Kind { return KindExclusion }

func (c ExclusionConfig) validate() error {
	if len(c.In) == 0 {
		return errors.New("in must list at least one value")
	}
	return nil
}

func (c ExclusionConfig) check(in Input) (failure, bool) {
	for _, v := range in.Values {
		if contains(c.In, v, c.CaseInsensitive) {
			return failure{key: MsgExclusion}, true
		}
	}
	return failure{}, false
}

// Exclusion validates that a value is not one of a reserved set.
func Exclusion(cfg ExclusionConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}

func contains(set []string, v string, caseInsensitive bool) bool {
	if !caseInsensitive {
		return slices.Contains(set, v)
	}
	want := fold(v)
	return slices.ContainsFunc(set, func(s string) bool { return fold(s) == want })
}

// fold applies Unicode case folding, which handles cases like "ß" vs "SS"
// that strings.EqualFold does not.
func fold(s string) string {
	return cases.Fold().String(s)
}
