// Command normalize_data rewrites the flat data files in their canonical
// shape. Useful once after pulling a data directory that still carries the
// legacy keys (courses, price, benefits); the server migrates on the fly, but
// normalizing up front keeps diffs honest from the first deploy.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bimcat/catalog-api/internal/store"
)

func main() {
	dataDir := flag.String("data", "./data", "data directory holding the JSON files")
	cursosFile := flag.String("cursos", "cursos.json", "courses file name")
	flag.Parse()

	if _, err := os.Stat(*dataDir); err != nil {
		log.Fatalf("data directory %s: %v", *dataDir, err)
	}

	cursos := store.NewCursoStore(*dataDir, *cursosFile, nil)
	if err := cursos.Normalize(context.Background()); err != nil {
		log.Fatalf("normalize %s: %v", *cursosFile, err)
	}

	fmt.Printf("normalized %s (%d cursos)\n", *cursosFile, len(cursos.List(context.Background())))
}
