package constant

// HUMAS 角色。权限分为两级：上传级（三个角色都具备）与管理级
// （负责人与秘书），管理级是上传级的超集。
const (
	RoleKetua      = "ketua_humas"
	RoleSekretaris = "sekretaris_humas"
	RoleStaff      = "staff_humas"
)

// CanUpload 判断角色是否具备上传/录入级权限
func CanUpload(role string) bool {
	switch role {
	case RoleKetua, RoleSekretaris, RoleStaff:
		return true
	}
	return false
}

// CanManage 判断角色是否具备管理级权限（编辑元数据、移入回收站、恢复）
func CanManage(role string) bool {
	switch role {
	case RoleKetua, RoleSekretaris:
		return true
	}
	return false
}
