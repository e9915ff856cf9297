package models

// OwnerSummary is the populated owner of a blog.
type OwnerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// FormattedBlog is the client-facing projection of a blog.
type FormattedBlog struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Author string        `json:"author"`
	URL    string        `json:"url"`
	Likes  int           `json:"likes"`
	User   *OwnerSummary `json:"user,omitempty"`
}

// BlogSummary is a blog as populated inside a user.
type BlogSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// FormattedUser is the client-facing projection of a user.
type FormattedUser struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Adult    bool          `json:"adult"`
	Blogs    []BlogSummary `json:"blogs"`
}

// FormattedComment is the client-facing projection of a comment.
type FormattedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// FormatBlog projects a blog. owner may be nil.
func FormatBlog(b *Blog, owner *User) FormattedBlog {
	out := FormattedBlog{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if owner != nil {
		out.User = &OwnerSummary{ID: owner.ID, Username: owner.Username, Name: owner.Name}
	}
	return out
}

// FormatUser projects a user together with its populated blogs.
func FormatUser(u *User, blogs []*Blog) FormattedUser {
	out := FormattedUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Adult:    u.Adult,
		Blogs:    make([]BlogSummary, 0, len(blogs)),
	}
	for _, b := range blogs {
		out.Blogs = append(out.Blogs, BlogSummary{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
			Likes:  b.Likes,
		})
	}
	return out
}

// FormatComment projects a single comment keyed by its parent blog ID.
func FormatComment(c *Comment) map[string]FormattedComment {
	return map[string]FormattedComment{
		c.Blog: {ID: c.ID, Content: c.Content},
	}
}

// GroupComments groups comments by parent blog ID, keeping input order
// within each group.
func GroupComments(comments []*Comment) map[string][]FormattedComment {
	grouped := make(map[string][]FormattedComment)
	for _, c := range comments {
		grouped[c.Blog] = append(grouped[c.Blog], FormattedComment{ID: c.ID, Content: c.Content})
	}
	return grouped
}
