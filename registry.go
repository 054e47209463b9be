package fsv

import (
	"fmt"
	"sort"
	"sync"
)

var (
	predicatesMu sync.RWMutex
	predicates   = map[string]Filter{
		"all":   AcceptAll,
		"vowel": IsVowel,
		"space": IsSpace,
		"digit": IsDigit,
		"alpha": IsAlpha,
		"upper": IsUpper,
		"lower": IsLower,
		"punct": IsPunct,
	}
)

// RegisterPredicate 注册命名过滤器
func RegisterPredicate(name string, f Filter) error {
	if name == "" || isNil(f) {
		return fmt.Errorf("register predicate %q: name and filter are required", name)
	}
	predicatesMu.Lock()
	defer predicatesMu.Unlock()

	if _, dup := predicates[name]; dup {
		logger.Warnf("predicate %s already registered", name)
		return fmt.Errorf("register predicate %q: %w", name, ErrDuplicatePredicate)
	}
	predicates[name] = f
	logger.Infof("predicate %s registered", name)
	return nil
}

// LookupPredicate 按名称查找过滤器
func LookupPredicate(name string) (Filter, bool) {
	predicatesMu.RLock()
	defer predicatesMu.RUnlock()
	f, ok := predicates[name]
	return f, ok
}

// UnregisterPredicate 删除过滤器,返回是否存在
func UnregisterPredicate(name string) bool {
	predicatesMu.Lock()
	defer predicatesMu.Unlock()
	if _, ok := predicates[name]; !ok {
		return false
	}
	delete(predicates, name)
	logger.Infof("predicate %s removed", name)
	return true
}

// PredicateNames 返回排序后的名称列表
func PredicateNames() []string {
	predicatesMu.RLock()
	defer predicatesMu.RUnlock()
	names := make([]string, 0, len(predicates))
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
