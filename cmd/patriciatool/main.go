// Command patriciatool is a small demo/inspection CLI over a string-keyed
// PATRICIA trie: load keys from stdin or mint random ones, then run
// prefix and nearest-key queries against the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/WilliamMorake/patricia-trie"
	"github.com/WilliamMorake/patricia-trie/randkey"
)

func main() {
	var (
		mint     = flag.Int("mint", 0, "mint N random UUID keys instead of reading stdin")
		prefix   = flag.String("prefix", "", "list every key under this prefix")
		nearest  = flag.String("nearest", "", "print the ceiling/floor neighbors of this key")
		cacheCap = flag.Int("select-cache", 128, "capacity of the LRU cache of keys listed by -prefix")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "patriciatool: logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	trie := patricia.New[string, int](patricia.StringKeyAnalyzer{})

	switch {
	case *mint > 0:
		keys, err := randkey.Mint(*mint)
		if err != nil {
			logger.Fatal("mint keys", zap.Error(err))
		}
		for i, k := range keys {
			if _, _, err := trie.Put(k, i); err != nil {
				logger.Fatal("put minted key", zap.String("key", k), zap.Error(err))
			}
		}
		logger.Info("minted keys", zap.Int("count", len(keys)))
	default:
		scanner := bufio.NewScanner(os.Stdin)
		i := 0
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if _, _, err := trie.Put(line, i); err != nil {
				logger.Warn("put stdin key", zap.String("key", line), zap.Error(err))
				continue
			}
			i++
		}
		if err := scanner.Err(); err != nil {
			logger.Fatal("read stdin", zap.Error(err))
		}
		logger.Info("loaded keys", zap.Int("count", i))
	}

	selectCache, err := lru.New[string, bool](*cacheCap)
	if err != nil {
		logger.Fatal("new select cache", zap.Error(err))
	}

	if *prefix != "" {
		view, err := trie.GetPrefixedBy(*prefix)
		if err != nil {
			logger.Fatal("get prefixed by", zap.String("prefix", *prefix), zap.Error(err))
		}
		it := view.Entries()
		for it.HasNext() {
			e, err := it.Next()
			if err != nil {
				logger.Fatal("iterate prefix view", zap.Error(err))
			}
			selectCache.Add(e.GetKey(), true)
			fmt.Printf("%s\t%d\n", e.GetKey(), e.GetValue())
		}
		logger.Info("prefix query done", zap.String("prefix", *prefix), zap.Int("matches", view.Size()))
	}

	if *nearest != "" {
		if _, hit := selectCache.Get(*nearest); hit {
			logger.Debug("nearest query key was listed by the prefix query", zap.String("key", *nearest))
		}
		if k, v, ok := trie.Ceiling(*nearest); ok {
			fmt.Printf("ceiling(%s) = %s -> %d\n", *nearest, k, v)
		}
		if k, v, ok := trie.Floor(*nearest); ok {
			fmt.Printf("floor(%s) = %s -> %d\n", *nearest, k, v)
		}
	}
}
