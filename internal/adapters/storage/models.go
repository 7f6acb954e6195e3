package storage

// BranchModel is the GORM model for the branch table
type BranchModel struct {
	Created string  `gorm:"column:created;not null"`
	Data    []byte  `gorm:"column:data"`
	Link    *string `gorm:"column:link;default:null"`
	Name    string  `gorm:"column:name;primaryKey"`
	Scope   *string `gorm:"column:scope;default:null"`
	Ticket  string  `gorm:"column:ticket;not null"`
}

// TableName specifies the table name for GORM
func (BranchModel) TableName() string { return "branch" }

// ConfigModel is the GORM model for the config table
type ConfigModel struct {
	Key    string `gorm:"column:key;primaryKey"`
	Path   string `gorm:"column:path;not null"`
	Status string `gorm:"column:status;not null"`
}

// TableName specifies the table name for GORM
func (ConfigModel) TableName() string { return "config" }
