// Package dao 实现数据访问层
package dao

import (
	"fmt"
	"time"

	"github.com/inkwellapp/journal-service/internal/model"
	"github.com/inkwellapp/journal-service/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Dao 数据访问对象，持有数据库连接
type Dao struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Dao {
	return &Dao{Db: db}
}

func (d *Dao) DB() *gorm.DB {
	return d.Db
}

// DatabaseConfig 数据库连接配置
type DatabaseConfig struct {
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
	RunMode         string
}

// migrateKeys 自动迁移的模型清单
var migrateKeys = []string{"Entry", "EntryVersion", "EntryTag", "Notebook", "Tag", "User"}

func dialector(c DatabaseConfig) (gorm.Dialector, error) {
	switch c.Type {
	case "sqlite":
		if err := fileurl.CreatePath(c.Path, 0754); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return sqlite.Open(c.Path), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName, c.Password, c.Host, c.Name, c.Charset, c.ParseTime)
		return mysql.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database type: %s", c.Type)
}

// NewDBEngineWithConfig 根据配置初始化 GORM 连接
func NewDBEngineWithConfig(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {

	dial, err := dialector(c)
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if c.RunMode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix, // 表名前缀
			SingularTable: true,          // 使用单数表名
		},
	})
	if err != nil {
		return nil, err
	}

	// 获取通用数据库对象 sql.DB ，然后使用其提供的功能
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns 用于设置连接池中空闲连接的最大数量。
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)

	// SetMaxOpenConns 设置打开数据库连接的最大数量。
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	// SetConnMaxLifetime 设置了连接可复用的最大时间。
	if c.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetime) * time.Second)
	} else {
		sqlDB.SetConnMaxLifetime(time.Minute * 10)
	}
	if c.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(c.ConnMaxIdleTime) * time.Second)
	}

	if c.AutoMigrate {
		for _, key := range migrateKeys {
			if err := model.AutoMigrate(db, key); err != nil {
				lg.Error("auto migrate failed", zap.String("model", key), zap.Error(err))
				return nil, err
			}
		}
	}

	return db, nil
}
