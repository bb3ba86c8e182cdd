// Package recommender computes movie suggestions from catalog text and user interactions.
//
// Two signals are combined: content similarity (TF-IDF over overview and genre
// names, nearest movies to each favorite) and user-based collaborative
// filtering (cosine nearest users over a favorite=2, like=1, dislike=-1
// matrix, taking their positively rated movies). Content seeds come from the
// raw favorites, the rating matrix only feeds the collaborative part.
package recommender

import (
	"math"
	"sort"
	"strings"

	"cinesport/internal/model"
)

// DefaultTopN is the number of suggestions and neighbors used when none is given.
const DefaultTopN = 5

// Scored is a suggested movie id with its combined score.
type Scored struct {
	MovieID int64
	Score   float64
}

// Recommend returns up to topN movie ids for userID, best first.
// Movies the user already interacted with are never returned.
func Recommend(movies []model.Movie, interactions []model.Interaction, userID string, topN int) []Scored {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ratings := ratingMatrix(interactions)
	own := ratings[userID]

	scores := make(map[int64]float64)
	for id, s := range contentScores(movies, favoritesOf(interactions, userID), topN) {
		scores[id] += s
	}
	for id, s := range collaborativeScores(ratings, userID, topN) {
		scores[id] += s
	}

	out := make([]Scored, 0, len(scores))
	for id, s := range scores {
		if _, seen := own[id]; seen {
			continue
		}
		out = append(out, Scored{MovieID: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].MovieID < out[j].MovieID
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// ratingMatrix averages repeated signals for the same user and movie.
func ratingMatrix(interactions []model.Interaction) map[string]map[int64]float64 {
	sum := make(map[string]map[int64]float64)
	cnt := make(map[string]map[int64]int)
	for _, in := range interactions {
		if sum[in.UserID] == nil {
			sum[in.UserID] = make(map[int64]float64)
			cnt[in.UserID] = make(map[int64]int)
		}
		sum[in.UserID][in.MovieID] += in.Weight
		cnt[in.UserID][in.MovieID]++
	}
	for u, row := range sum {
		for m := range row {
			row[m] /= float64(cnt[u][m])
		}
	}
	return sum
}

// favoritesOf returns the distinct movies userID favorited, in ascending id order.
func favoritesOf(interactions []model.Interaction, userID string) []int64 {
	seen := make(map[int64]bool)
	var out []int64
	for _, in := range interactions {
		if in.UserID != userID || !in.Favorite || seen[in.MovieID] {
			continue
		}
		seen[in.MovieID] = true
		out = append(out, in.MovieID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// contentScores adds, for each favorite, the similarity of its topN nearest movies.
func contentScores(movies []model.Movie, favorites []int64, topN int) map[int64]float64 {
	out := make(map[int64]float64)
	if len(favorites) == 0 || len(movies) < 2 {
		return out
	}

	docs := make([]string, len(movies))
	index := make(map[int64]int, len(movies))
	for i, m := range movies {
		docs[i] = m.Overview + " " + strings.Join(m.Genres, " ")
		index[m.ID] = i
	}
	vecs := tfidf(docs)

	type neighbor struct {
		idx int
		sim float64
	}
	for _, movieID := range favorites {
		src, ok := index[movieID]
		if !ok {
			continue
		}
		near := make([]neighbor, 0, len(movies)-1)
		for i := range movies {
			if i == src {
				continue
			}
			near = append(near, neighbor{idx: i, sim: dot(vecs[src], vecs[i])})
		}
		sort.Slice(near, func(i, j int) bool {
			if near[i].sim != near[j].sim {
				return near[i].sim > near[j].sim
			}
			return movies[near[i].idx].ID < movies[near[j].idx].ID
		})
		if len(near) > topN {
			near = near[:topN]
		}
		for _, n := range near {
			out[movies[n.idx].ID] += n.sim
		}
	}
	return out
}

// collaborativeScores weights the positive ratings of the topN most similar users by their similarity.
func collaborativeScores(ratings map[string]map[int64]float64, userID string, topN int) map[int64]float64 {
	out := make(map[int64]float64)
	own, ok := ratings[userID]
	if !ok {
		return out
	}

	type peer struct {
		id  string
		sim float64
	}
	peers := make([]peer, 0, len(ratings))
	for id, row := range ratings {
		if id == userID {
			continue
		}
		peers = append(peers, peer{id: id, sim: cosine(own, row)})
	}
	sort.Slice(peers, func(i, j int) bool {
		if peers[i].sim != peers[j].sim {
			return peers[i].sim > peers[j].sim
		}
		return peers[i].id < peers[j].id
	})
	if len(peers) > topN {
		peers = peers[:topN]
	}

	for _, p := range peers {
		for movieID, r := range ratings[p.id] {
			if r > 0 {
				// Keep zero-similarity neighbors contributing, as nearest-neighbor search would.
				out[movieID] += r * math.Max(p.sim, 0.01)
			}
		}
	}
	return out
}

func cosine(a, b map[int64]float64) float64 {
	var dotAB, na, nb float64
	for k, v := range a {
		na += v * v
		dotAB += v * b[k]
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dotAB / (math.Sqrt(na) * math.Sqrt(nb))
}
