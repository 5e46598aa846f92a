package CsvHandler

import (
	"github.com/nickyhof/CsvHandler/db"
	"github.com/nickyhof/CsvHandler/load"
)

type Instance struct {
	Source *load.Source
}

func Open(source *load.Source) *Instance {
	return &Instance{
		Source: source,
	}
}

func (instance *Instance) Engine() *db.Engine {
	return db.NewEngine(instance.Source)
}
