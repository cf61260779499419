package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikeEscape LIKE 子句使用的转义声明，与 ContainsPattern 配合使用
const LikeEscape = `ESCAPE '\'`

// ContainsPattern 构造大小写不敏感的包含匹配模式，调用方需对列使用 LOWER()
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
