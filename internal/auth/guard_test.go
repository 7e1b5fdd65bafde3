package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RouteGuard", func() {
	var (
		superAdmin *Principal
		editor     *Principal
		viewer     *Principal
	)

	ginkgo.BeforeEach(func() {
		superAdmin = &Principal{ID: "u-1", Role: RoleSuperAdmin}
		editor = &Principal{ID: "u-2", Role: RoleEditor, Permissions: []string{"portfolio", "skills", "experience"}}
		viewer = &Principal{ID: "u-3", Role: RoleViewer}
	})

	ginkgo.Describe("ZoneForPath", func() {
		ginkgo.It("should classify paths into zones", func() {
			gomega.Expect(ZoneForPath("/")).To(gomega.Equal(ZonePublic))
			gomega.Expect(ZoneForPath("/about")).To(gomega.Equal(ZonePublic))
			gomega.Expect(ZoneForPath("/admin")).To(gomega.Equal(ZoneAdmin))
			gomega.Expect(ZoneForPath("/admin/portfolio")).To(gomega.Equal(ZoneAdmin))
			gomega.Expect(ZoneForPath("/administrator")).To(gomega.Equal(ZonePublic))
			gomega.Expect(ZoneForPath("/portal")).To(gomega.Equal(ZonePortal))
			gomega.Expect(ZoneForPath("/portal/apps")).To(gomega.Equal(ZonePortal))
		})
	})

	ginkgo.Describe("Decide", func() {
		ginkgo.Context("public zone", func() {
			ginkgo.It("should allow everyone", func() {
				gomega.Expect(Decide(nil, "/")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(viewer, "/about")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(superAdmin, "/")).To(gomega.Equal(DecisionAllow))
			})
		})

		ginkgo.Context("admin zone", func() {
			ginkgo.It("should send anonymous users to the admin login", func() {
				gomega.Expect(Decide(nil, "/admin")).To(gomega.Equal(DecisionAdminLogin))
				gomega.Expect(Decide(nil, "/admin/portfolio")).To(gomega.Equal(DecisionAdminLogin))
			})

			ginkgo.It("should deny signed-in non-admins", func() {
				gomega.Expect(Decide(editor, "/admin/portfolio")).To(gomega.Equal(DecisionAccessDenied))
				gomega.Expect(Decide(viewer, "/admin")).To(gomega.Equal(DecisionAccessDenied))
			})

			ginkgo.It("should allow the super admin", func() {
				gomega.Expect(Decide(superAdmin, "/admin")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(superAdmin, "/admin/settings")).To(gomega.Equal(DecisionAllow))
			})
		})

		ginkgo.Context("portal zone", func() {
			ginkgo.It("should send anonymous users to the portal login", func() {
				gomega.Expect(Decide(nil, "/portal")).To(gomega.Equal(DecisionPortalLogin))
			})

			ginkgo.It("should allow portal users", func() {
				gomega.Expect(Decide(viewer, "/portal")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(editor, "/portal/apps")).To(gomega.Equal(DecisionAllow))
			})

			ginkgo.It("should push the super admin to the admin home", func() {
				gomega.Expect(Decide(superAdmin, "/portal")).To(gomega.Equal(DecisionAdminHome))
			})
		})

		ginkgo.Context("open paths", func() {
			ginkgo.It("should never redirect the login and register surfaces", func() {
				gomega.Expect(Decide(nil, "/login")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(nil, "/portal/login")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(nil, "/portal/register")).To(gomega.Equal(DecisionAllow))
				gomega.Expect(Decide(nil, "/access-denied")).To(gomega.Equal(DecisionAllow))
			})
		})
	})

	ginkgo.Describe("RedirectTarget", func() {
		ginkgo.It("should map decisions to their destinations", func() {
			target, redirect := DecisionAdminLogin.RedirectTarget()
			gomega.Expect(redirect).To(gomega.BeTrue())
			gomega.Expect(target).To(gomega.Equal(AdminLoginPath))

			target, redirect = DecisionPortalLogin.RedirectTarget()
			gomega.Expect(redirect).To(gomega.BeTrue())
			gomega.Expect(target).To(gomega.Equal(PortalLoginPath))

			target, redirect = DecisionAccessDenied.RedirectTarget()
			gomega.Expect(redirect).To(gomega.BeTrue())
			gomega.Expect(target).To(gomega.Equal(AccessDeniedPath))

			target, redirect = DecisionAdminHome.RedirectTarget()
			gomega.Expect(redirect).To(gomega.BeTrue())
			gomega.Expect(target).To(gomega.Equal(AdminHomePath))

			_, redirect = DecisionAllow.RedirectTarget()
			gomega.Expect(redirect).To(gomega.BeFalse())
		})
	})
})
