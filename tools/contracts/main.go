package main

import (
	"flag"
	"log"
	"os"

	"social-im/internal/dto"
	"social-im/pkg/contract"
)

// 导出全部契约文档：contracts -o docs/contracts.yaml
func main() {
	out := flag.String("o", "", "输出文件，默认写到标准输出")
	flag.Parse()

	data, err := contract.CatalogYAML(dto.Schemas()...)
	if err != nil {
		log.Fatalf("生成契约文档失败: %v", err)
	}
	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("写入%s失败: %v", *out, err)
	}
}
