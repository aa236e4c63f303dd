package gallery

import (
	"errors"
	"time"
)

var ErrInvalidCategory = errors.New("invalid gallery category")

type Category string

const (
	CategoryBusinessPark Category = "business-park"
	CategoryRestaurant   Category = "restaurant"
	CategoryHotel        Category = "hotel"
	CategoryEvents       Category = "events"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBusinessPark, CategoryRestaurant, CategoryHotel, CategoryEvents:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Image struct {
	ID           int
	Filename     string
	OriginalName string
	Category     Category
	Title        string
	Description  string
	UploadDate   time.Time
	URL          string
	Size         int64
}
