package models

type Sponsor struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(150);not null" json:"name"`
	Tier string `gorm:"type:varchar(50);not null" json:"tier"`
	Link string `gorm:"type:varchar(255)" json:"link"`
}

// SeedSponsors is the fixed set inserted once when the table is empty.
func SeedSponsors() []Sponsor {
	return []Sponsor{
		{Name: "Alpha Tech Solutions", Tier: "Gold", Link: "https://example.com"},
		{Name: "Beta Cloud Services", Tier: "Silver", Link: "https://example.com"},
		{Name: "CodeCraft Academy", Tier: "Bronze", Link: "https://example.com"},
	}
}
