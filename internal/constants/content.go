package constants

// Пути контентных документов относительно корня контента.
// Совпадают с раскладкой статического сайта: /content/...
const (
	PropertyIndexPath    = "content/property-list.json"
	PropertyDocumentPath = "content/properties/property-%s.json"
	BlogIndexPath        = "content/blog-list.json"
	BlogDocumentPath     = "content/blogs/blog-%s.json"
	PageDocumentPath     = "content/%s.json"
)
