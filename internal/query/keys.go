package query

import "strings"

// Cache keys. Parameterised keys are built with the functions below.
const (
	KeyCurrentUser = "user:current"
	KeyRecentPosts = "posts:recent"
)

const (
	userPrefix      = "user:"
	profilePrefix   = "profile:"
	postPrefix      = "post:"
	userPostsSuffix = ":posts"
	userSavesSuffix = ":saves"
)

// KeyUser is the key of a profile by document id. It lives outside the user:
// namespace so no id can collide with KeyCurrentUser or the list keys.
func KeyUser(userID string) string {
	return profilePrefix + userID
}

// KeyPost is the key of a single post.
func KeyPost(postID string) string {
	return postPrefix + postID
}

// KeyUserPosts is the key of a creator's posts.
func KeyUserPosts(userID string) string {
	return userPrefix + userID + userPostsSuffix
}

// KeyUserSaves is the key of a user's saved records.
func KeyUserSaves(userID string) string {
	return userPrefix + userID + userSavesSuffix
}

// isUserPostsKey matches KeyUserPosts for any user.
func isUserPostsKey(key string) bool {
	return strings.HasPrefix(key, userPrefix) && strings.HasSuffix(key, userPostsSuffix)
}
