// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/jobfilter"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./job.go -package=daomocks -destination=./mocks/job.mock.go -typed JobDAO
type JobDAO interface {
	Insert(ctx context.Context, job Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	// Find 把过滤条件下推成 SQL，结果按创建时间倒序
	Find(ctx context.Context, c jobfilter.Criteria) ([]Job, error)
	All(ctx context.Context) ([]Job, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{
		db: db,
	}
}

func (d *GORMJobDAO) Insert(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	if job.Ctime == 0 {
		job.Ctime = now
	}
	job.Utime = now
	job.TitleKey = jobfilter.TextKey(job.Title)
	job.LocationKey = jobfilter.TextKey(job.Location)
	job.TypeKey = jobfilter.TypeKey(job.Type)
	err := d.db.WithContext(ctx).Create(&job).Error
	return job.Id, err
}

func (d *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var job Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	return job, err
}

func (d *GORMJobDAO) Find(ctx context.Context, c jobfilter.Criteria) ([]Job, error) {
	db := d.db.WithContext(ctx).Model(&Job{})
	if c.Title != "" {
		db = db.Where("title_key LIKE ?", containsPattern(c.Title))
	}
	if c.Location != "" {
		db = db.Where("location_key LIKE ?", containsPattern(c.Location))
	}
	if c.HasType {
		db = db.Where("type_key = ?", c.Type)
	}
	// NULL 参与比较结果为 NULL，缺失薪资的职位自然被排除
	if c.HasMinSalary {
		db = db.Where("max_salary >= ?", c.MinSalary)
	}
	if c.HasMaxSalary {
		db = db.Where("min_salary <= ?", c.MaxSalary)
	}
	var jobs []Job
	err := db.Order("ctime DESC").Order("id DESC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) All(ctx context.Context) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Order("ctime DESC").Order("id DESC").Find(&jobs).Error
	return jobs, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(key string) string {
	return "%" + likeEscaper.Replace(key) + "%"
}

type Job struct {
	Id    int64  `gorm:"primaryKey;autoIncrement:false"`
	Title string `gorm:"type:varchar(256);not null"`
	// 以下 *Key 字段由 jobfilter 归一化得到，只用于过滤
	TitleKey         string `gorm:"type:varchar(256) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;not null"`
	CompanyName      string `gorm:"type:varchar(256);not null"`
	ImageUrl         string `gorm:"type:varchar(1024)"`
	Location         string `gorm:"type:varchar(256);not null"`
	LocationKey      string `gorm:"type:varchar(256) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;not null"`
	Type             string `gorm:"type:varchar(32);not null"`
	TypeKey          string `gorm:"type:varchar(32) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;not null;index"`
	MinSalary        sql.NullInt64
	MaxSalary        sql.NullInt64
	Experience       string `gorm:"type:varchar(64)"`
	Description      string `gorm:"type:text"`
	Requirements     string `gorm:"type:text"`
	Responsibilities string `gorm:"type:text"`
	// 申请截止日期，毫秒
	Deadline int64
	// 创建时间
	Ctime int64 `gorm:"index"`
	// 更新时间
	Utime int64
}
