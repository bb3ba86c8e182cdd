package recommender

import (
	"math"
	"strings"
	"unicode"
)

// vector is a sparse L2-normalized term vector.
type vector map[string]float64

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// tfidf vectorizes documents with raw term counts and smoothed idf,
// idf(t) = ln((1+n)/(1+df(t))) + 1, then L2-normalizes each row.
func tfidf(docs []string) []vector {
	tokens := make([][]string, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		tokens[i] = tokenize(d)
		seen := make(map[string]bool, len(tokens[i]))
		for _, t := range tokens[i] {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(docs))
	out := make([]vector, len(docs))
	for i, toks := range tokens {
		v := make(vector, len(toks))
		for _, t := range toks {
			v[t]++
		}
		var norm float64
		for t, tf := range v {
			w := tf * (math.Log((1+n)/(1+float64(df[t]))) + 1)
			v[t] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for t := range v {
				v[t] /= norm
			}
		}
		out[i] = v
	}
	return out
}

// dot is the cosine similarity of two normalized vectors.
func dot(a, b vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var s float64
	for t, w := range a {
		s += w * b[t]
	}
	return s
}

var stopWords = func() map[string]bool {
	words := strings.Fields(`a about above after again against all also am an and any are as at be
		because been before being below between both but by can cannot could did do does doing down
		during each few for from further had has have having he her here hers herself him himself his
		how i if in into is it its itself just me more most my myself no nor not now of off on once
		only or other our ours ourselves out over own same she should so some such than that the their
		theirs them themselves then there these they this those through to too under until up very
		was we were what when where which while who whom why will with would you your yours yourself
		yourselves`)
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
