package bot

import (
	"context"
	"sort"
	"strings"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/constants"
)

// SystemBotID 内置机器人的 ID，同时作为其发消息时的作者 ID
const SystemBotID = "system"

// NewSystemBot 内置机器人，提供 !ping 和 !help
// !help 列出 registry 中所有机器人的命令
func NewSystemBot(registry *Registry) *Bot {
	return &Bot{
		ID:          SystemBotID,
		Name:        "System",
		Description: "Built-in utility commands",
		Commands: map[string]CommandHandler{
			"ping": func(ctx context.Context, hc *Context, msg *model.Message, _ []string) error {
				_, err := hc.ReplyTo(ctx, msg.ID, "pong")
				return err
			},
			"help": func(ctx context.Context, hc *Context, msg *model.Message, _ []string) error {
				_, err := hc.ReplyTo(ctx, msg.ID, helpText(registry))
				return err
			},
		},
	}
}

func helpText(registry *Registry) string {
	seen := make(map[string]struct{})
	var names []string
	for _, b := range registry.Bots() {
		for name := range b.Commands {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, constants.COMMAND_PREFIX+name)
		}
	}
	sort.Strings(names)
	return "Available commands: " + strings.Join(names, ", ")
}
