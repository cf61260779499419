package cache

import (
	"context"
	"fmt"
	"sort"

	"github.com/labstack/gommon/log"
)

// Registry 资源缓存与依赖关系表
//
// 资源发生变更时清除自身的列表与详情，并清空所有依赖它的资源。
type Registry struct {
	resources  map[string]*ResourceCache
	dependents map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{
		resources:  make(map[string]*ResourceCache),
		dependents: make(map[string][]string),
	}
}

// Register 注册资源缓存
func (r *Registry) Register(rc *ResourceCache) *ResourceCache {
	r.resources[rc.Name()] = rc
	return rc
}

// DependsOn 声明 resource 变更时需要一并清空 dependents
func (r *Registry) DependsOn(resource string, dependents ...string) {
	r.dependents[resource] = append(r.dependents[resource], dependents...)
}

// Resource 按名称获取资源缓存
func (r *Registry) Resource(name string) (*ResourceCache, bool) {
	rc, ok := r.resources[name]
	return rc, ok
}

// Dependents 返回声明的依赖资源
func (r *Registry) Dependents(resource string) []string {
	return r.dependents[resource]
}

// Names 已注册的资源名（有序）
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invalidate 资源变更后的失效处理，id 为 0 时只清除列表。
// 失效失败只记录警告，不影响写操作。
func (r *Registry) Invalidate(ctx context.Context, resource string, id uint) {
	if rc, ok := r.resources[resource]; ok {
		var err error
		if id == 0 {
			err = rc.ClearList(ctx)
		} else {
			err = rc.ClearResource(ctx, id)
		}
		if err != nil {
			log.Warnf("清除缓存失败 resource=%s id=%d: %v", resource, id, err)
		}
	}

	for _, dep := range r.dependents[resource] {
		rc, ok := r.resources[dep]
		if !ok {
			continue
		}
		if err := rc.ClearAll(ctx); err != nil {
			log.Warnf("清除依赖缓存失败 resource=%s dependent=%s: %v", resource, dep, err)
		}
	}
}

// Flush 清空指定资源，不传则清空全部
func (r *Registry) Flush(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = r.Names()
	}
	for _, name := range names {
		rc, ok := r.resources[name]
		if !ok {
			return fmt.Errorf("未知的缓存资源: %s", name)
		}
		if err := rc.ClearAll(ctx); err != nil {
			return fmt.Errorf("清空缓存 %s 失败: %w", name, err)
		}
	}
	return nil
}
