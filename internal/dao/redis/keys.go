package redis

// 缓存键
const (
	communityKeyPrefix      = "community_"
	ownedCommunityKeyPrefix = "community_owned_"
)

// CommunityKey 单个社区详情的缓存键
func CommunityKey(communityID string) string {
	return communityKeyPrefix + communityID
}

// OwnedCommunitiesKey 用户拥有的社区列表的缓存键
func OwnedCommunitiesKey(userID string) string {
	return ownedCommunityKeyPrefix + userID
}
