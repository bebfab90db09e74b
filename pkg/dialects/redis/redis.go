// Package redis provides the key/value-command dialect. Redis command files
// have hash-mark line comments, no block comments, double-quoted strings
// with backslash escapes, and no eval strings.
package redis

import "github.com/sqlcaps/sqlcaps/pkg/dialect"

func init() {
	dialect.Register(Redis)
}

// Redis is the key/value-command dialect.
var Redis = dialect.NewDialect("redis").
	Keywords(Keywords...).
	LineComments("#").
	BlockComments("", "").
	StringSyntax('"', false).
	Build()

// Keywords is the Redis command table.
var Keywords = []string{
	// Connection and server
	"PING", "ECHO", "AUTH", "SELECT", "QUIT",
	"INFO", "DBSIZE", "FLUSHDB", "FLUSHALL", "CONFIG", "CLIENT",

	// Generic keys
	"GET", "SET", "DEL", "EXISTS", "TYPE", "KEYS", "SCAN",
	"EXPIRE", "EXPIREAT", "PEXPIRE", "TTL", "PTTL", "PERSIST",
	"RENAME", "RENAMENX", "RANDOMKEY", "DUMP", "RESTORE",

	// Strings
	"APPEND", "STRLEN", "GETSET", "GETRANGE", "SETRANGE",
	"MGET", "MSET", "MSETNX", "SETNX", "SETEX", "PSETEX",
	"INCR", "DECR", "INCRBY", "DECRBY", "INCRBYFLOAT",

	// Hashes
	"HGET", "HSET", "HSETNX", "HDEL", "HEXISTS", "HGETALL",
	"HKEYS", "HVALS", "HLEN", "HMGET", "HMSET", "HINCRBY", "HSCAN",

	// Lists
	"LPUSH", "RPUSH", "LPOP", "RPOP", "LRANGE", "LLEN",
	"LINDEX", "LSET", "LREM", "LTRIM", "LINSERT",
	"BLPOP", "BRPOP", "RPOPLPUSH",

	// Sets
	"SADD", "SREM", "SMEMBERS", "SISMEMBER", "SCARD", "SPOP",
	"SRANDMEMBER", "SMOVE", "SUNION", "SINTER", "SDIFF", "SSCAN",

	// Sorted sets
	"ZADD", "ZREM", "ZRANGE", "ZREVRANGE", "ZRANGEBYSCORE",
	"ZSCORE", "ZCARD", "ZCOUNT", "ZINCRBY", "ZRANK", "ZREVRANK", "ZSCAN",

	// Pub/sub and transactions
	"SUBSCRIBE", "UNSUBSCRIBE", "PUBLISH", "PSUBSCRIBE", "PUNSUBSCRIBE",
	"MULTI", "EXEC", "DISCARD", "WATCH", "UNWATCH",

	// Scripting
	"EVAL", "EVALSHA", "SCRIPT",
}
