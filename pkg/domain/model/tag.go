package model

// Tag is a question tag. Only the lookup surface is exposed; tag management
// happens elsewhere.
type Tag struct {
	ID         int64  `gorm:"column:id;primaryKey" json:"id"`
	Label      string `gorm:"column:label;uniqueIndex;not null" json:"label"`
	UsageCount int    `gorm:"column:usage_count;not null;default:0" json:"usageCount"`
}

func (Tag) TableName() string {
	return "tag"
}
