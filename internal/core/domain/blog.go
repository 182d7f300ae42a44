package domain

// BlogArticle - загруженный документ статьи блога.
type BlogArticle struct {
	ID           string
	Tag          string
	Date         string
	PreviewTitle string
	PreviewImage string
	ArticleTitle string
	ArticleImage string
	Content      string
}

// BlogPreview - проекция статьи для ленты блога.
type BlogPreview struct {
	ID           string
	Tag          string
	Date         string
	Title        string
	Image        string
	ArticleLink  string
}

// NewBlogPreview проецирует статью в карточку ленты.
func NewBlogPreview(a BlogArticle) BlogPreview {
	return BlogPreview{
		ID:          a.ID,
		Tag:         a.Tag,
		Date:        a.Date,
		Title:       a.PreviewTitle,
		Image:       a.PreviewImage,
		ArticleLink: "blog.html#" + a.ID,
	}
}
