package classifier

import (
	"math/rand"
	"sort"
)

const leaf = -1

// node is either a split (feature >= 0) or a leaf carrying a class distribution.
type node struct {
	feature     int
	threshold   float64
	left, right int
	dist        []float64
}

// tree is a fully grown CART classification tree stored as a flat node slice;
// node 0 is the root.
type tree struct {
	nodes []node
}

func (t *tree) distribution(x []float64) []float64 {
	i := 0
	for {
		n := &t.nodes[i]
		if n.feature == leaf {
			return n.dist
		}
		if x[n.feature] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

type treeBuilder struct {
	x           [][]float64
	y           []int
	nClasses    int
	nFeatures   int
	maxFeatures int
	minSplit    int
	rng         *rand.Rand
	nodes       []node
}

type split struct {
	feature   int
	threshold float64
	impurity  float64
}

func (b *treeBuilder) build(samples []int) *tree {
	b.nodes = nil
	b.grow(samples)
	return &tree{nodes: b.nodes}
}

// grow appends the subtree for samples and returns its node index.
func (b *treeBuilder) grow(samples []int) int {
	counts := b.classCounts(samples)
	idx := len(b.nodes)
	b.nodes = append(b.nodes, node{feature: leaf})

	if len(samples) < b.minSplit || gini(counts, len(samples)) == 0 {
		b.nodes[idx].dist = normalize(counts, len(samples))
		return idx
	}

	best, ok := b.bestSplit(samples)
	if !ok {
		b.nodes[idx].dist = normalize(counts, len(samples))
		return idx
	}

	var left, right []int
	for _, s := range samples {
		if b.x[s][best.feature] <= best.threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	l := b.grow(left)
	r := b.grow(right)
	b.nodes[idx] = node{feature: best.feature, threshold: best.threshold, left: l, right: r}
	return idx
}

// bestSplit draws features in random order and evaluates the first
// maxFeatures of them. Constant features do not count toward that limit.
func (b *treeBuilder) bestSplit(samples []int) (split, bool) {
	features := b.rng.Perm(b.nFeatures)
	best := split{impurity: 2}
	found := false
	visited := 0

	for _, f := range features {
		if visited >= b.maxFeatures && found {
			break
		}
		s, ok := b.scan(samples, f)
		if !ok {
			continue
		}
		visited++
		if !found || s.impurity < best.impurity {
			best, found = s, true
		}
	}
	return best, found
}

// scan finds the best threshold on feature f. It reports false when the
// feature is constant over samples.
func (b *treeBuilder) scan(samples []int, f int) (split, bool) {
	sorted := append([]int(nil), samples...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return b.x[sorted[i]][f] < b.x[sorted[j]][f]
	})

	n := len(sorted)
	if b.x[sorted[0]][f] == b.x[sorted[n-1]][f] {
		return split{}, false
	}

	left := make([]int, b.nClasses)
	right := b.classCounts(sorted)
	best := split{feature: f, impurity: 2}

	for i := 0; i < n-1; i++ {
		c := b.y[sorted[i]]
		left[c]++
		right[c]--

		lo, hi := b.x[sorted[i]][f], b.x[sorted[i+1]][f]
		if lo == hi {
			continue
		}
		nl, nr := i+1, n-i-1
		imp := (float64(nl)*gini(left, nl) + float64(nr)*gini(right, nr)) / float64(n)
		if imp < best.impurity {
			t := lo + (hi-lo)/2
			if t == hi {
				t = lo
			}
			best.impurity, best.threshold = imp, t
		}
	}
	return best, true
}

func (b *treeBuilder) classCounts(samples []int) []int {
	counts := make([]int, b.nClasses)
	for _, s := range samples {
		counts[b.y[s]]++
	}
	return counts
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		sum += p * p
	}
	return 1 - sum
}

func normalize(counts []int, n int) []float64 {
	dist := make([]float64, len(counts))
	if n == 0 {
		return dist
	}
	for i, c := range counts {
		dist[i] = float64(c) / float64(n)
	}
	return dist
}
