// Package listhelper computes summary statistics over a list of blogs.
//
// Every "most" helper is a single max-reduce: when several candidates share
// the maximum, the one that appears first in the input wins.
package listhelper

import "bloglist/app/models"

// Favorite is the projection returned by FavoriteBlog.
type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs is the result of MostBlogs.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the result of MostLikes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes returns the sum of likes over all blogs.
func TotalLikes(blogs []*models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. ok is false for an
// empty list.
func FavoriteBlog(blogs []*models.Blog) (fav Favorite, ok bool) {
	var best *models.Blog
	for _, b := range blogs {
		if best == nil || b.Likes > best.Likes {
			best = b
		}
	}
	if best == nil {
		return Favorite{}, false
	}
	return Favorite{Title: best.Title, Author: best.Author, URL: best.URL, Likes: best.Likes}, true
}

// MostBlogs returns the author with the most blogs.
func MostBlogs(blogs []*models.Blog) (AuthorBlogs, bool) {
	author, count, ok := maxByAuthor(blogs, func(*models.Blog) int { return 1 })
	return AuthorBlogs{Author: author, Blogs: count}, ok
}

// MostLikes returns the author whose blogs have the most likes in total.
func MostLikes(blogs []*models.Blog) (AuthorLikes, bool) {
	author, likes, ok := maxByAuthor(blogs, func(b *models.Blog) int { return b.Likes })
	return AuthorLikes{Author: author, Likes: likes}, ok
}

// maxByAuthor sums weight per author and returns the largest total.
func maxByAuthor(blogs []*models.Blog, weight func(*models.Blog) int) (string, int, bool) {
	if len(blogs) == 0 {
		return "", 0, false
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			order = append(order, b.Author)
		}
		totals[b.Author] += weight(b)
	}

	best := order[0]
	for _, author := range order[1:] {
		if totals[author] > totals[best] {
			best = author
		}
	}
	return best, totals[best], true
}
