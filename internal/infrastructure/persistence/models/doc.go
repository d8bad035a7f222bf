// Package models contains the GORM persistence models and their
// conversions to and from the domain aggregates. Models never leak out of
// the persistence layer.
package models

// All returns every model in dependency order, for schema migration in
// tests and tooling.
func All() []interface{} {
	return []interface{}{
		&CompanyModel{},
		&UserModel{},
		&UserRoleModel{},
		&RoleModel{},
		&UserConfigModel{},
		&CategoryModel{},
		&ProductModel{},
		&PaymentMethodModel{},
		&CustomerModel{},
		&SupplierModel{},
		&InvoiceModel{},
		&InvoiceItemModel{},
		&SalesOrderModel{},
		&SalesOrderItemModel{},
		&PurchaseOrderModel{},
		&PurchaseOrderItemModel{},
		&ReceiveModel{},
		&ReceiveItemModel{},
		&CreditNoteModel{},
		&CreditNoteItemModel{},
		&CreditsApplicationModel{},
		&DepartmentModel{},
		&DesignationModel{},
		&EmployeeModel{},
		&PayslipModel{},
		&PayItemModel{},
	}
}
