package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>

// related-view is construct-only, so it must be passed to g_object_new.
static inline WebKitWebView* new_related_web_view(WebKitWebView* related) {
	return WEBKIT_WEB_VIEW(g_object_new(WEBKIT_TYPE_WEB_VIEW, "related-view", related, NULL));
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// newRelatedView creates a view sharing the web process, settings and user
// content of related. Scripts in the new view see related as window.opener.
func newRelatedView(related *webkit.WebView) *webkit.WebView {
	obj := coreglib.InternObject(related)
	if obj == nil {
		return nil
	}
	native := C.new_related_web_view((*C.WebKitWebView)(unsafe.Pointer(obj.Native())))
	runtime.KeepAlive(related)
	if native == nil {
		return nil
	}

	view := coreglib.Take(unsafe.Pointer(native))
	return &webkit.WebView{
		WebViewBase: webkit.WebViewBase{
			Widget: gtk.Widget{
				InitiallyUnowned: coreglib.InitiallyUnowned{Object: view},
				Object:           view,
				Accessible:       gtk.Accessible{Object: view},
				Buildable:        gtk.Buildable{Object: view},
				ConstraintTarget: gtk.ConstraintTarget{Object: view},
			},
		},
	}
}
