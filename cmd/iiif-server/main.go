package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/greut/iiifcanon/iiif"
)

// 64M
const defaultExtentsSize = 64 << 20

func main() {
	// Configuration
	var configFile = flag.String("config", "config.toml", "Define the configuration file to use.")
	flag.Parse()

	if flag.NArg() > 0 {
		*configFile = flag.Arg(0)
	}

	log.Println(fmt.Sprintf("Reading configuration from %s", *configFile))
	config, err := iiif.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	if config.Cache.ExtentsSize == 0 {
		config.Cache.ExtentsSize = defaultExtentsSize
	}

	var catalog iiif.Catalog
	if config.Catalog != "" {
		catalog, err = iiif.LoadCatalog(config.Catalog)
		if err != nil {
			log.Fatal(err)
		}
		log.Println(fmt.Sprintf("%d images in the catalog", len(catalog)))
	}

	// build router with group cache middleware, catalog and configuration.
	handler := iiif.SetGroupCache(
		iiif.WithCatalog(iiif.WithConfig(iiif.MakeRouter(), config), catalog),
		config,
		fmt.Sprintf("http://%s:%d/", config.Host, config.Port),
	)

	// Serving
	listen := fmt.Sprintf("%v:%v", config.Host, config.Port)

	log.Println(fmt.Sprintf("Server running on %v", listen))
	log.Fatal(http.ListenAndServe(listen, handler))
}
