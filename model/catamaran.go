package model

type CatamaranSpecs struct {
	Length   string `json:"length"`
	Width    string `json:"width"`
	Draft    string `json:"draft"`
	Mainsail string `json:"mainsail"`
	Jib      string `json:"jib"`
	Engine   string `json:"engine"`
	Fuel     string `json:"fuel"`
	Water    string `json:"water"`
}

type Catamaran struct {
	DTO
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name       string         `gorm:"not null" json:"name"`
	TaglineFr  string         `json:"taglineFr"`
	TaglineEn  string         `json:"taglineEn"`
	ImageUrl   string         `json:"imageUrl"`
	Gallery    []string       `gorm:"type:jsonb;serializer:json" json:"gallery"`
	Capacity   int            `gorm:"not null" json:"capacity"`
	Cabins     int            `gorm:"not null" json:"cabins"`
	Bathrooms  int            `gorm:"not null" json:"bathrooms"`
	Specs      CatamaranSpecs `gorm:"type:jsonb;serializer:json" json:"specs"`
	FeaturesFr []string       `gorm:"type:jsonb;serializer:json" json:"featuresFr"`
	FeaturesEn []string       `gorm:"type:jsonb;serializer:json" json:"featuresEn"`
	Order      int            `gorm:"not null;default:0" json:"order"`
}

type Catamarans []Catamaran
