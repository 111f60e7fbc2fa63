package mapper_test

import (
	"time"

	"pnp-mapper/model"
)

type SchemaItem struct {
	Title   string
	Count   int
	Flag    bool
	Old     string
	Created time.Time
}

type ModelItem struct {
	Title   string
	Count   int
	Flag    bool
	Old     string `mapper:"deprecated"`
	Created time.Time
}

type TextItem struct {
	Title   string
	Count   string
	Flag    string
	Created string
}

type SchemaList struct {
	Name  string
	Items []SchemaItem
	Tags  []string
}

type ModelList struct {
	Name  string
	Items *model.Collection[ModelItem]
	Tags  []string
}

func newModelList() *ModelList {
	return &ModelList{Items: model.NewCollection[ModelItem]()}
}

type LooseItem struct {
	Title string
	Flag  string
}

type LooseList struct {
	Items []LooseItem
}

type Page struct {
	Title string
}

type Site struct {
	Title string
}

type Audit struct {
	CreatedBy string
}

type Document struct {
	Audit
	Title string
}

type Tree struct {
	Name     string
	Children *model.Collection[Tree]
}

type SchemaTree struct {
	Name     string
	Children []SchemaTree
}
