package model

import "github.com/lib/pq"

// 用户角色常量
const (
	RoleAdmin = "admin" // 管理员
	RoleUser  = "user"  // 普通用户
)

// SysUser 系统用户（店铺管理员账号）
type SysUser struct {
	BaseModel
	Username string `gorm:"size:100;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"` // 哈希密码
	Email    string `gorm:"size:100"`

	Role     string `gorm:"size:20;default:'user'"`
	IsActive bool   `gorm:"default:true"`

	// 用户拥有的店铺
	Stores []Store `gorm:"foreignKey:UserID"`
}

func (SysUser) TableName() string {
	return "sys_users"
}

// Store 店铺（租户边界，所有目录实体都挂在店铺下）
type Store struct {
	BaseModel

	Name   string `gorm:"size:255;not null"`
	UserID int64  `gorm:"index;not null"` // 店主的 SysUserID

	// 结算货币
	CurrencyCode string `gorm:"size:10;default:CAD"`

	// 支付会话允许的收货国家 (Postgres Array)
	AllowedCountries pq.StringArray `gorm:"type:text[]"`
}

func (Store) TableName() string {
	return "stores"
}
