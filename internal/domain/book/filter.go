package book

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书列表支持的查询参数
const (
	ParamGenres     = "genres[]"
	ParamBookName   = "bookName"
	ParamAuthorName = "authorName"
	ParamAvgRating  = "avg_rating"
	ParamNumRating  = "num_rating"
)

const genreColumn = "genre_name"

type operator string

const (
	opEqual   operator = "="
	opGreater operator = ">" // 严格大于,等于阈值的记录不返回
)

// predicate 一个可选过滤条件:参数名 → 列、比较符、取值解析
type predicate struct {
	param  string
	column string
	op     operator
	parse  func(string) (interface{}, error)
}

// scalarPredicates 单值过滤条件,按此顺序渲染(与查询串顺序无关)
var scalarPredicates = []predicate{
	{param: ParamBookName, column: "book_name", op: opEqual, parse: parseString},
	{param: ParamAuthorName, column: "author_name", op: opEqual, parse: parseString},
	{param: ParamAvgRating, column: "avg_rating", op: opGreater, parse: parseThreshold},
	{param: ParamNumRating, column: "num_rating", op: opGreater, parse: parseThreshold},
}

// Clause 编译后的WHERE子句及其位置参数
// SQL中"?"的个数恒等于len(Args)
type Clause struct {
	SQL  string
	Args []interface{}
}

// Empty 没有任何过滤条件
func (c Clause) Empty() bool {
	return c.SQL == ""
}

// Compile 把查询参数编译成参数化WHERE子句
//
// 规则:
//  1. 每个非空类型名生成 genre_name = ?,多个之间用OR连接并整体加括号
//  2. 其余非空参数用AND连接;空字符串与未传等价
//  3. 未识别的参数忽略
//  4. 没有任何条件时返回空子句(不输出孤立的WHERE)
//
// 示例:genres=[Fantasy SciFi], bookName=Dune →
//
//	WHERE (genre_name = ? OR genre_name = ?) AND book_name = ?   [Fantasy SciFi Dune]
func Compile(genres []string, params map[string]string) (Clause, error) {
	var (
		terms []string
		args  []interface{}
	)

	var genreTerms []string
	for _, g := range genres {
		if g == "" {
			continue
		}
		genreTerms = append(genreTerms, genreColumn+" "+string(opEqual)+" ?")
		args = append(args, g)
	}
	if len(genreTerms) > 0 {
		terms = append(terms, "("+strings.Join(genreTerms, " OR ")+")")
	}

	for _, p := range scalarPredicates {
		raw := params[p.param]
		if raw == "" {
			continue
		}
		value, err := p.parse(raw)
		if err != nil {
			return Clause{}, apperrors.WithCause(ErrInvalidFilterValue, fmt.Errorf("%s=%q: %w", p.param, raw, err))
		}
		terms = append(terms, fmt.Sprintf("%s %s ?", p.column, p.op))
		args = append(args, value)
	}

	if len(terms) == 0 {
		return Clause{}, nil
	}
	return Clause{
		SQL:  "WHERE " + strings.Join(terms, " AND "),
		Args: args,
	}, nil
}

func parseString(s string) (interface{}, error) {
	return s, nil
}

// parseThreshold 数值阈值,NaN/Inf无法与聚合值比较,视为非法
func parseThreshold(s string) (interface{}, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("not a finite number")
	}
	return f, nil
}
