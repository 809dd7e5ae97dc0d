package usa

import (
	"fmt"
	"strings"

	"github.com/mtraver/aqihub/aqi"
)

// Item identifies a pollutant together with its averaging window.
type Item int

const (
	PM25_24H Item = iota
	PM10_24H
	SO2_1H
	SO2_24H
	NO2_1H
	CO_8H
	O3_8H
	O3_1H
)

var itemNames = [...]string{
	PM25_24H: "PM25_24H",
	PM10_24H: "PM10_24H",
	SO2_1H:   "SO2_1H",
	SO2_24H:  "SO2_24H",
	NO2_1H:   "NO2_1H",
	CO_8H:    "CO_8H",
	O3_8H:    "O3_8H",
	O3_1H:    "O3_1H",
}

var itemPollutants = [...]aqi.Pollutant{
	PM25_24H: aqi.PM25,
	PM10_24H: aqi.PM10,
	SO2_1H:   aqi.SO2,
	SO2_24H:  aqi.SO2,
	NO2_1H:   aqi.NO2,
	CO_8H:    aqi.CO,
	O3_8H:    aqi.O3,
	O3_1H:    aqi.O3,
}

func (i Item) valid() bool {
	return i >= PM25_24H && i <= O3_1H
}

// String returns the canonical item name, e.g. "O3_8H".
func (i Item) String() string {
	if !i.valid() {
		return fmt.Sprintf("Item(%d)", int(i))
	}
	return itemNames[i]
}

// Pollutant returns the pollutant family the item belongs to.
func (i Item) Pollutant() aqi.Pollutant {
	return itemPollutants[i]
}

// Items returns every item in declaration order.
func Items() []Item {
	items := make([]Item, len(itemNames))
	for i := range itemNames {
		items[i] = Item(i)
	}
	return items
}

// ItemFromName parses a canonical item name. Matching is case-sensitive.
func ItemFromName(name string) (Item, bool) {
	for i, n := range itemNames {
		if n == name {
			return Item(i), true
		}
	}
	return 0, false
}

// ParseItem is ItemFromName with an error naming the valid items.
func ParseItem(name string) (Item, error) {
	item, ok := ItemFromName(name)
	if !ok {
		return 0, fmt.Errorf("usa: item must be one of %s, got %q", strings.Join(itemNames[:], ", "), name)
	}
	return item, nil
}
