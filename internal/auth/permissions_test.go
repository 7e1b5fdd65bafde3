package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Permissions", func() {
	ginkgo.Describe("DefaultPermissions", func() {
		ginkgo.It("should grant every capability to SUPER_ADMIN", func() {
			gomega.Expect(DefaultPermissions(RoleSuperAdmin)).To(
				gomega.ConsistOf("portfolio", "skills", "experience", "pages", "settings"))
		})

		ginkgo.It("should grant the content capabilities to EDITOR", func() {
			gomega.Expect(DefaultPermissions(RoleEditor)).To(
				gomega.ConsistOf("portfolio", "skills", "experience"))
		})

		ginkgo.It("should grant nothing to VIEWER", func() {
			gomega.Expect(DefaultPermissions(RoleViewer)).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Can", func() {
		ginkgo.It("should bypass the permission set for SUPER_ADMIN", func() {
			gomega.Expect(Can(RoleSuperAdmin, nil, "settings")).To(gomega.BeTrue())
		})

		ginkgo.It("should check the set for other roles", func() {
			perms := []string{"portfolio", "skills"}
			gomega.Expect(Can(RoleEditor, perms, "portfolio")).To(gomega.BeTrue())
			gomega.Expect(Can(RoleEditor, perms, "settings")).To(gomega.BeFalse())
			gomega.Expect(Can(RoleViewer, nil, "portfolio")).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("CanAccessPath", func() {
		ginkgo.It("should allow SUPER_ADMIN everywhere", func() {
			gomega.Expect(CanAccessPath(RoleSuperAdmin, nil, "/admin")).To(gomega.BeTrue())
			gomega.Expect(CanAccessPath(RoleSuperAdmin, nil, "/admin/anything")).To(gomega.BeTrue())
		})

		ginkgo.It("should close the admin root to everyone else", func() {
			perms := []string{"portfolio", "skills", "experience", "pages", "settings"}
			gomega.Expect(CanAccessPath(RoleEditor, perms, "/admin")).To(gomega.BeFalse())
			gomega.Expect(CanAccessPath(RoleEditor, perms, "/admin/")).To(gomega.BeFalse())
			gomega.Expect(CanAccessPath(RoleViewer, nil, "/admin")).To(gomega.BeFalse())
		})

		ginkgo.It("should map admin pages to their capability", func() {
			gomega.Expect(CanAccessPath(RoleViewer, []string{"portfolio"}, "/admin/portfolio")).To(gomega.BeTrue())
			gomega.Expect(CanAccessPath(RoleViewer, []string{"portfolio"}, "/admin/settings")).To(gomega.BeFalse())
			gomega.Expect(CanAccessPath(RoleEditor, []string{"skills"}, "/admin/skills")).To(gomega.BeTrue())
			gomega.Expect(CanAccessPath(RoleEditor, []string{"skills"}, "/admin/pages")).To(gomega.BeFalse())
		})

		ginkgo.It("should match sub-paths of a mapped page", func() {
			gomega.Expect(CanAccessPath(RoleEditor, []string{"portfolio"}, "/admin/portfolio/new")).To(gomega.BeTrue())
		})

		ginkgo.It("should fall back to role for unmapped admin paths", func() {
			gomega.Expect(CanAccessPath(RoleEditor, nil, "/admin/unknown")).To(gomega.BeTrue())
			gomega.Expect(CanAccessPath(RoleViewer, nil, "/admin/unknown")).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("permission serialization", func() {
		ginkgo.It("should round-trip a permission set", func() {
			perms := []string{"portfolio", "settings"}
			gomega.Expect(ParsePermissions(SerializePermissions(perms))).To(gomega.Equal(perms))
		})

		ginkgo.It("should treat malformed input as empty", func() {
			gomega.Expect(ParsePermissions("not json")).To(gomega.BeEmpty())
			gomega.Expect(ParsePermissions("")).To(gomega.BeEmpty())
		})

		ginkgo.It("should serialize nil as an empty list", func() {
			gomega.Expect(SerializePermissions(nil)).To(gomega.Equal("[]"))
		})
	})

	ginkgo.Describe("IsSuperAdmin", func() {
		ginkgo.It("should only match the SUPER_ADMIN role", func() {
			gomega.Expect(IsSuperAdmin(RoleSuperAdmin)).To(gomega.BeTrue())
			gomega.Expect(IsSuperAdmin(RoleEditor)).To(gomega.BeFalse())
			gomega.Expect(IsSuperAdmin(RoleViewer)).To(gomega.BeFalse())
		})
	})
})
