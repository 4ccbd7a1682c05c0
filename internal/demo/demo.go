// Package demo builds a sample object graph for trying the inspector without
// embedding it in another program.
package demo

import (
	"net"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/inspector/pkg/inspect"
	"github.com/mesh-intelligence/inspector/pkg/types"
)

// Package-level settings exposed as statics of Warehouse.
var (
	MaxItems = 500
	Units    = "kg"
)

// Warehouse is the root of the sample graph.
type Warehouse struct {
	ID       uuid.UUID
	Name     string
	Opened   time.Time
	Capacity int
	Bins     [3]Bin
	Items    []*Item
	Stock    map[string]int
	Manager  *Employee
	Gateway  net.IP
	Extra    any
	Revision int `inspect:"readonly"`
	notes    string
}

// Item is one stocked product.
type Item struct {
	SKU     string
	Price   float64
	Qty     uint16
	Fragile bool
	Shelf   *Bin
}

// Bin is a storage location.
type Bin struct {
	Label string
	Used  int
}

// Employee manages a warehouse and may have reports.
type Employee struct {
	Name    string
	Email   string
	Reports []*Employee
}

// Settings is a second, flat root.
type Settings struct {
	Verbose  bool
	Interval time.Duration
	Retries  int8
	Ratio    float32
	Labels   map[string]string
}

// Root is a named entry point into the graph.
type Root struct {
	Name  string
	Value any
}

// Register attaches the package settings to Warehouse in reg.
func Register(reg *inspect.Registry) error {
	t := reflect.TypeOf(Warehouse{})
	if err := reg.Register(t, "MaxItems", &MaxItems, types.Public); err != nil {
		return err
	}
	return reg.Register(t, "Units", &Units, types.Public|types.Final)
}

// NewWarehouse builds the sample warehouse graph.
func NewWarehouse() *Warehouse {
	w := &Warehouse{
		ID:       uuid.MustParse("0190b6a4-7c1e-7d2a-9f00-3a1b2c3d4e5f"),
		Name:     "North depot",
		Opened:   time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC),
		Capacity: 120,
		Bins:     [3]Bin{{Label: "A1"}, {Label: "A2", Used: 4}, {Label: "B1"}},
		Stock:    map[string]int{"bolt-m6": 400, "nut-m6": 380, "washer": 1200},
		Gateway:  net.ParseIP("10.0.0.1"),
		Revision: 3,
		notes:    "inventory due in May",
	}
	w.Items = []*Item{
		{SKU: "bolt-m6", Price: 0.12, Qty: 400, Shelf: &w.Bins[0]},
		{SKU: "lamp", Price: 24.5, Qty: 3, Fragile: true, Shelf: &w.Bins[1]},
	}
	w.Manager = &Employee{
		Name:  "Ana",
		Email: "ana@example.com",
		Reports: []*Employee{
			{Name: "Ben", Email: "ben@example.com"},
		},
	}
	w.Extra = w.Items[1]
	return w
}

// NewSettings builds the sample settings root.
func NewSettings() *Settings {
	return &Settings{
		Interval: 30 * time.Second,
		Retries:  3,
		Ratio:    0.75,
		Labels:   map[string]string{"env": "dev", "team": "ops"},
	}
}

// Roots returns the sample roots in display order.
func Roots() []Root {
	return []Root{
		{Name: "warehouse", Value: NewWarehouse()},
		{Name: "settings", Value: NewSettings()},
	}
}
