package merger

import (
	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/models"
)

const pageTreeView = "cms.admin.pageadmin.get_tree"

func applyPermissions(r *run) error {
	r.s.CMS.Permission = *r.opts.PermissionsEnabled
	return nil
}

// applyCacheDurations seeds CMS_CACHE_DURATIONS once and lets nonzero
// options replace the content and menu durations.
func applyCacheDurations(r *run) error {
	if r.s.CacheDurations == nil {
		r.s.CacheDurations = models.DefaultCacheDurations()
	}

	overridesByClass := map[string]*int{
		models.CacheContent: r.opts.CMSContentCacheDuration,
		models.CacheMenus:   r.opts.CMSMenusCacheDuration,
	}
	for class, d := range overridesByClass {
		if d != nil && *d != 0 {
			r.s.CacheDurations[class] = *d
		}
	}

	return nil
}

func applyRenderModelTags(r *run) error {
	r.s.UnescapedRenderModelTags = *r.opts.UnescapedRenderModelTags
	return nil
}

// applyRandomCommentExclusions keeps the BREACH countermeasure out of the
// page tree snippets; the admin script expects a single top-level element.
func applyRandomCommentExclusions(r *run) error {
	if r.s.RandomCommentExcludedViews == nil {
		r.s.RandomCommentExcludedViews = settings.NewStringSet()
	}
	r.s.RandomCommentExcludedViews.Add(pageTreeView)
	return nil
}
