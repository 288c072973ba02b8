package models

import "github.com/tidwall/gjson"

// first 返回第一个存在的字段
func first(r gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := r.Get(gjson.Escape(k)); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// stringsOf 数组按元素转字符串，单个值视为只有一个元素的数组
func stringsOf(r gjson.Result) []string {
	if !r.Exists() || r.Type == gjson.Null {
		return []string{}
	}
	if !r.IsArray() {
		if r.String() == "" {
			return []string{}
		}
		return []string{r.String()}
	}
	arr := r.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}
