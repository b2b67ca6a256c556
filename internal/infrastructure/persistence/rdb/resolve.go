package rdb

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// nameLookup 按名称解析ID所需的表结构信息
type nameLookup struct {
	table   string
	idCol   string
	nameCol string
}

// resolveID 按名称解析ID: SELECT MIN(id), COUNT(*) FROM t WHERE name = ?
// 没有匹配时返回nil(引用列存NULL),名称不唯一时取最小ID,两种情况都记录告警
func resolveID(ctx context.Context, db *gorm.DB, l nameLookup, name string) (*uint, error) {
	var res struct {
		ID      *uint
		Matches int64
	}

	err := db.Table(l.table).
		Select(fmt.Sprintf("MIN(%s) AS id, COUNT(*) AS matches", l.idCol)).
		Where(l.nameCol+" = ?", name).
		Scan(&res).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "resolve %s", l.table)
	}

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"table": l.table,
		"name":  name,
	})
	switch {
	case res.ID == nil:
		log.Warn("unmatched name, storing NULL reference")
	case res.Matches > 1:
		log.WithFields(logrus.Fields{
			"matches": res.Matches,
			"chosen":  *res.ID,
		}).Warn("ambiguous name, using lowest id")
	}

	return res.ID, nil
}
