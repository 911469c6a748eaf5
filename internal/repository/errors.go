package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("记录不存在")
	ErrDuplicate = errors.New("记录已存在")
	ErrDatabase  = errors.New("数据库错误")
)

// MySQL 错误码
const (
	mysqlDuplicateEntry = 1062
	mysqlNoSuchTable    = 1146
)

// WrapGormError 将GORM/驱动错误转换为仓储层可识别的错误
func WrapGormError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", ErrDuplicate, mysqlErr.Message)
		case mysqlNoSuchTable:
			return fmt.Errorf("%w: %s", ErrDatabase, mysqlErr.Message)
		}
	}

	return fmt.Errorf("%w: %v", ErrDatabase, err)
}
