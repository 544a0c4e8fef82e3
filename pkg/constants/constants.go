package constants

const (
	CHANNEL_SIZE          = 100       // 事件通道大小
	DEFAULT_MESSAGE_LIMIT = 50        // 消息列表默认条数
	MAX_MESSAGE_LIMIT     = 100       // 消息列表最大条数
	INVITE_CODE_LENGTH    = 8         // 邀请码长度
	DEFAULT_ROLE_COLOR    = "#7c3aed" // 角色默认颜色
	CACHE_TTL_MINUTES     = 30        // 社区缓存有效期（分钟）
	BOT_TIMEOUT_SECONDS   = 5         // 单个机器人处理超时（秒）
	COMMAND_PREFIX        = "!"       // 机器人命令前缀
)
