package order

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNo 生成订单号
// 格式:ORD + Unix秒级时间戳 + 6位随机数,例如 ORD1767225600042137
// 唯一性最终由order_no唯一索引保证
func GenerateOrderNo(now time.Time) string {
	return fmt.Sprintf("ORD%d%06d", now.Unix(), rand.Intn(1000000))
}
