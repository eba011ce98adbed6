package config

import (
	"sort"
	"strings"
)

// SentimentSource is an approved sentiment data provider kind
type SentimentSource string

const (
	SourceTwitter   SentimentSource = "twitter"
	SourceNews      SentimentSource = "news"
	SourceReddit    SentimentSource = "reddit"
	SourceInstagram SentimentSource = "instagram"
)

// AllSources lists the closed set of provider kinds
func AllSources() []SentimentSource {
	return []SentimentSource{SourceTwitter, SourceNews, SourceReddit, SourceInstagram}
}

// ParseSentimentSource resolves a token against the closed set
func ParseSentimentSource(token string) (SentimentSource, error) {
	name := SentimentSource(strings.ToLower(strings.TrimSpace(token)))
	switch name {
	case SourceTwitter, SourceNews, SourceReddit, SourceInstagram:
		return name, nil
	}
	return "", newError(KindUnknownSentimentSource, EnvSentimentSources, token, "unknown sentiment source")
}

// SourceSet is the immutable set of enabled sentiment sources
type SourceSet struct {
	members map[SentimentSource]struct{}
}

// NewSourceSet builds a set from tokens. Blank tokens are skipped, duplicates
// collapse, and any unknown token fails the whole set: a dropped source would
// go unnoticed by monitoring.
func NewSourceSet(tokens []string) (SourceSet, error) {
	members := make(map[SentimentSource]struct{}, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		src, err := ParseSentimentSource(token)
		if err != nil {
			return SourceSet{}, err
		}
		members[src] = struct{}{}
	}
	return SourceSet{members: members}, nil
}

// ParseSourceList builds a set from a comma-separated list
func ParseSourceList(raw string) (SourceSet, error) {
	return NewSourceSet(strings.Split(raw, ","))
}

// LoadSources builds the enabled-source set from env
func LoadSources(env Environ) (SourceSet, error) {
	return ParseSourceList(env.Get(EnvSentimentSources, DefaultSentimentSources))
}

// Contains reports membership. The argument is normalised the same way
// NewSourceSet normalises its tokens, so " Twitter" matches twitter.
func (s SourceSet) Contains(src SentimentSource) bool {
	_, ok := s.members[SentimentSource(strings.ToLower(strings.TrimSpace(string(src))))]
	return ok
}

// ContainsToken reports whether a raw token names an enabled source.
// 알 수 없는 토큰은 false
func (s SourceSet) ContainsToken(token string) bool {
	src, err := ParseSentimentSource(token)
	if err != nil {
		return false
	}
	return s.Contains(src)
}

// Len returns the number of distinct members
func (s SourceSet) Len() int {
	return len(s.members)
}

// Sources returns the members sorted by name (a fresh slice)
func (s SourceSet) Sources() []SentimentSource {
	out := make([]SentimentSource, 0, len(s.members))
	for src := range s.members {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s SourceSet) String() string {
	names := make([]string, 0, len(s.members))
	for _, src := range s.Sources() {
		names = append(names, string(src))
	}
	return strings.Join(names, ",")
}
