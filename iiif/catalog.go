package iiif

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// Catalog gives the extent of images by identifier, without opening them.
//
//	lena.jpg:
//	  width: 1084
//	  height: 2318
type Catalog map[string]Extent

// LoadCatalog reads a YAML catalog.
func LoadCatalog(filename string) (Catalog, error) {
	buffer, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", filename, err)
	}

	catalog := Catalog{}
	if err := yaml.Unmarshal(buffer, &catalog); err != nil {
		return nil, fmt.Errorf("cannot parse catalog %s: %w", filename, err)
	}

	for id, extent := range catalog {
		if extent.Width <= 0 || extent.Height <= 0 {
			return nil, fmt.Errorf("catalog %s: %#v has no extent", filename, id)
		}
	}

	debug("Catalog %s: %d images", filename, len(catalog))
	return catalog, nil
}
