package constants

import "time"

const (
	CacheKeyMemberInfo = "orpheo:member:info:%d"
)

const (
	CacheExpireMemberInfo = 1 * time.Hour
)
