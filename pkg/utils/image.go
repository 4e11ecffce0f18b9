package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// 图片下载上限，和上传接口的限制保持一致
const maxImageSize = 10 << 20

// DownloadImage 拉取网络图片并返回字节切片
// 转存外链图片到自己的存储时用
func DownloadImage(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("不支持的图片地址: %s", url)
	}

	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", "TurnstoneAdmin/1.0")

	resp, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("下载图片失败: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("下载图片失败 (Status %d)", resp.StatusCode())
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, fmt.Errorf("图片内容为空")
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("图片超过 %dMB 限制", maxImageSize>>20)
	}
	return data, nil
}
