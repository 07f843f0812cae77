package book

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalPrefix 匹配字符串开头最长的十进制数字(可带符号、小数和指数)
// "12.50" → "12.50", "12abc" → "12", " -3.5e2x" → "-3.5e2"
var decimalPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// truthy 判断客户端提交的值是否"有值"
// 缺失(nil)、空串、0、false视为无值,其余都算有值
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// ParsePrice 按最长数字前缀解析价格文本
// 用于写入时的字符串价格,以及读取时把DECIMAL列还原为浮点数
func ParsePrice(s string) (float64, bool) {
	m := decimalPrefix.FindString(strings.TrimLeft(s, " \t\n\r"))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// 指数溢出时ParseFloat返回±Inf和ErrRange
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return f, true
}

// coercePrice 把提交的价格转为浮点数
// 数字原样使用;字符串取最长数字前缀;其它类型或无数字前缀返回ErrInvalidPrice
// 负数和0不拒绝
func coercePrice(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		if f, ok := ParsePrice(x.String()); ok {
			return f, nil
		}
	case string:
		if f, ok := ParsePrice(x); ok {
			return f, nil
		}
	}
	return 0, ErrInvalidPrice
}

// coerceFeatured 只有布尔true或字符串"true"为推荐
func coerceFeatured(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == "true"
	default:
		return false
	}
}
