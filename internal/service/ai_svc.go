package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"turnstone_admin_v1/internal/api/dto"
)

// AIService 商品文案生成服务
type AIService struct {
	ApiKey       string
	ModelVersion string // 支持配置，如 "gemini-2.5-flash"
}

// NewAIService 支持传入模型版本
func NewAIService(apiKey string, modelVersion string) *AIService {
	if modelVersion == "" {
		modelVersion = "gemini-2.5-flash"
	}
	return &AIService{
		ApiKey:       apiKey,
		ModelVersion: modelVersion,
	}
}

// GenerateCopy 按关键词生成商品标题/描述/标签
// extraInstruction 允许用户传入额外的 Prompt 指令，例如 "Use emojis" 或 "Focus on SEO"
func (s *AIService) GenerateCopy(ctx context.Context, keywords string, extraInstruction string) (*dto.GenerateCopyResp, error) {
	if keywords == "" {
		return nil, fmt.Errorf("%w: 关键词不能为空", ErrValidation)
	}
	if s.ApiKey == "" {
		return nil, fmt.Errorf("AI 服务未配置 API Key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("Gemini 初始化失败: %v", err)
	}
	defer client.Close()

	modelAI := client.GenerativeModel(s.ModelVersion)
	modelAI.ResponseMIMEType = "application/json"

	basePrompt := fmt.Sprintf(`
        You are a copywriter for a handmade goods web store.
        Generate a product listing based on these keywords/features: "%s".

        Requirements:
        1. Title: SEO friendly, max 140 chars.
        2. Description: Engaging, sales-oriented.
        3. Tags: 13 comma-separated keywords.
    `, keywords)

	// 如果有额外指令，追加进去
	if extraInstruction != "" {
		basePrompt += fmt.Sprintf("\nAdditional User Instructions: %s", extraInstruction)
	}

	basePrompt += `
        Output Schema (JSON):
        {
            "title": "string",
            "description": "string",
            "tags": ["string", "string"]
        }
    `

	resp, err := modelAI.GenerateContent(ctx, genai.Text(basePrompt))
	if err != nil {
		return nil, fmt.Errorf("AI 生成失败: %v", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("AI 返回为空")
	}

	// Gemini 返回的是 Parts，通常第一个 Part 是文本
	var rawJSON string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			rawJSON = string(txt)
			break
		}
	}

	// 清洗一下可能存在的 markdown 符号 (```json ... ```)
	rawJSON = strings.TrimPrefix(rawJSON, "```json")
	rawJSON = strings.TrimPrefix(rawJSON, "```")
	rawJSON = strings.TrimSuffix(rawJSON, "```")

	var result dto.GenerateCopyResp
	if err := json.Unmarshal([]byte(rawJSON), &result); err != nil {
		return nil, fmt.Errorf("JSON 解析失败: %v | 原始数据: %s", err, rawJSON)
	}

	return &result, nil
}
