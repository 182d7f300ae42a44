package main

import (
	"flag"
	"log"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/contentsource"
)

// Пересобирает индексные документы каталога и блога после добавления
// или удаления файлов в content/. Запускается из CI или вручную.
func main() {
	root := flag.String("root", ".", "site repository root containing the content/ directory")
	flag.Parse()

	properties, err := contentsource.GeneratePropertyIndex(*root)
	if err != nil {
		log.Fatalf("Failed to generate property index: %v", err)
	}
	log.Printf("property-list.json updated: %d properties", properties)

	blogs, err := contentsource.GenerateBlogIndex(*root)
	if err != nil {
		log.Fatalf("Failed to generate blog index: %v", err)
	}
	log.Printf("blog-list.json updated: %d blogs", blogs)
}
