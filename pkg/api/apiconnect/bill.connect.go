// Package apiconnect wires the patungan.v1 BillService messages to Connect
// handlers and clients using a JSON codec.
package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/r1zemon/patungan/pkg/api"
)

// BillServiceName is the fully-qualified name of the BillService service.
const BillServiceName = "patungan.v1.BillService"

// These constants are the fully-qualified names of the RPCs defined in
// BillService. They are also the URL paths the handler routes on.
const (
	// BillServiceCreateBillProcedure is the fully-qualified name of the BillService's CreateBill RPC.
	BillServiceCreateBillProcedure = "/patungan.v1.BillService/CreateBill"
	// BillServiceGetBillProcedure is the fully-qualified name of the BillService's GetBill RPC.
	BillServiceGetBillProcedure = "/patungan.v1.BillService/GetBill"
	// BillServiceDeleteBillProcedure is the fully-qualified name of the BillService's DeleteBill RPC.
	BillServiceDeleteBillProcedure = "/patungan.v1.BillService/DeleteBill"
	// BillServiceListBillsProcedure is the fully-qualified name of the BillService's ListBills RPC.
	BillServiceListBillsProcedure = "/patungan.v1.BillService/ListBills"
	// BillServiceAddParticipantProcedure is the fully-qualified name of the BillService's AddParticipant RPC.
	BillServiceAddParticipantProcedure = "/patungan.v1.BillService/AddParticipant"
	// BillServiceRenameParticipantProcedure is the fully-qualified name of the BillService's RenameParticipant RPC.
	BillServiceRenameParticipantProcedure = "/patungan.v1.BillService/RenameParticipant"
	// BillServiceRemoveParticipantProcedure is the fully-qualified name of the BillService's RemoveParticipant RPC.
	BillServiceRemoveParticipantProcedure = "/patungan.v1.BillService/RemoveParticipant"
	// BillServiceAddItemProcedure is the fully-qualified name of the BillService's AddItem RPC.
	BillServiceAddItemProcedure = "/patungan.v1.BillService/AddItem"
	// BillServiceUpdateItemProcedure is the fully-qualified name of the BillService's UpdateItem RPC.
	BillServiceUpdateItemProcedure = "/patungan.v1.BillService/UpdateItem"
	// BillServiceRemoveItemProcedure is the fully-qualified name of the BillService's RemoveItem RPC.
	BillServiceRemoveItemProcedure = "/patungan.v1.BillService/RemoveItem"
	// BillServiceSetAssignmentProcedure is the fully-qualified name of the BillService's SetAssignment RPC.
	BillServiceSetAssignmentProcedure = "/patungan.v1.BillService/SetAssignment"
	// BillServiceSetPolicyProcedure is the fully-qualified name of the BillService's SetPolicy RPC.
	BillServiceSetPolicyProcedure = "/patungan.v1.BillService/SetPolicy"
	// BillServiceImportReceiptProcedure is the fully-qualified name of the BillService's ImportReceipt RPC.
	BillServiceImportReceiptProcedure = "/patungan.v1.BillService/ImportReceipt"
	// BillServiceSettleProcedure is the fully-qualified name of the BillService's Settle RPC.
	BillServiceSettleProcedure = "/patungan.v1.BillService/Settle"
	// BillServiceGetBalancesProcedure is the fully-qualified name of the BillService's GetBalances RPC.
	BillServiceGetBalancesProcedure = "/patungan.v1.BillService/GetBalances"
)

// BillServiceClient is a client for the patungan.v1.BillService service.
type BillServiceClient interface {
	// CreateBill creates a bill with optional initial participants.
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	// GetBill returns a bill snapshot with unassigned-unit warnings.
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	// DeleteBill deletes a bill and everything stored with it.
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	// ListBills lists bill headers, newest first.
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	// AddParticipant adds a participant to a bill.
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	// RenameParticipant renames a participant.
	RenameParticipant(context.Context, *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error)
	// RemoveParticipant removes a participant and their assignments.
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
	// AddItem adds a line item.
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	// UpdateItem changes the name, unit price or quantity of an item.
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	// RemoveItem removes a line item.
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error)
	// SetAssignment sets how many units of an item a participant takes.
	SetAssignment(context.Context, *connect.Request[api.SetAssignmentRequest]) (*connect.Response[api.SetAssignmentResponse], error)
	// SetPolicy replaces the payer, tax, tip, strategy and currency of a bill.
	SetPolicy(context.Context, *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error)
	// ImportReceipt adds items proposed by receipt extraction.
	ImportReceipt(context.Context, *connect.Request[api.ImportReceiptRequest]) (*connect.Response[api.ImportReceiptResponse], error)
	// Settle computes the settlement summary of a bill.
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
	// GetBalances nets stored settlements across bills.
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
}

// NewBillServiceClient constructs a client for the patungan.v1.BillService
// service. baseURL is the server root, for example http://localhost:8080.
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &billServiceClient{
		createBill: connect.NewClient[api.CreateBillRequest, api.CreateBillResponse](
			httpClient,
			baseURL+BillServiceCreateBillProcedure,
			opts...,
		),
		getBill: connect.NewClient[api.GetBillRequest, api.GetBillResponse](
			httpClient,
			baseURL+BillServiceGetBillProcedure,
			opts...,
		),
		deleteBill: connect.NewClient[api.DeleteBillRequest, api.DeleteBillResponse](
			httpClient,
			baseURL+BillServiceDeleteBillProcedure,
			opts...,
		),
		listBills: connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](
			httpClient,
			baseURL+BillServiceListBillsProcedure,
			opts...,
		),
		addParticipant: connect.NewClient[api.AddParticipantRequest, api.AddParticipantResponse](
			httpClient,
			baseURL+BillServiceAddParticipantProcedure,
			opts...,
		),
		renameParticipant: connect.NewClient[api.RenameParticipantRequest, api.RenameParticipantResponse](
			httpClient,
			baseURL+BillServiceRenameParticipantProcedure,
			opts...,
		),
		removeParticipant: connect.NewClient[api.RemoveParticipantRequest, api.RemoveParticipantResponse](
			httpClient,
			baseURL+BillServiceRemoveParticipantProcedure,
			opts...,
		),
		addItem: connect.NewClient[api.AddItemRequest, api.AddItemResponse](
			httpClient,
			baseURL+BillServiceAddItemProcedure,
			opts...,
		),
		updateItem: connect.NewClient[api.UpdateItemRequest, api.UpdateItemResponse](
			httpClient,
			baseURL+BillServiceUpdateItemProcedure,
			opts...,
		),
		removeItem: connect.NewClient[api.RemoveItemRequest, api.RemoveItemResponse](
			httpClient,
			baseURL+BillServiceRemoveItemProcedure,
			opts...,
		),
		setAssignment: connect.NewClient[api.SetAssignmentRequest, api.SetAssignmentResponse](
			httpClient,
			baseURL+BillServiceSetAssignmentProcedure,
			opts...,
		),
		setPolicy: connect.NewClient[api.SetPolicyRequest, api.SetPolicyResponse](
			httpClient,
			baseURL+BillServiceSetPolicyProcedure,
			opts...,
		),
		importReceipt: connect.NewClient[api.ImportReceiptRequest, api.ImportReceiptResponse](
			httpClient,
			baseURL+BillServiceImportReceiptProcedure,
			opts...,
		),
		settle: connect.NewClient[api.SettleRequest, api.SettleResponse](
			httpClient,
			baseURL+BillServiceSettleProcedure,
			opts...,
		),
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+BillServiceGetBalancesProcedure,
			opts...,
		),
	}
}

// billServiceClient implements BillServiceClient.
type billServiceClient struct {
	createBill        *connect.Client[api.CreateBillRequest, api.CreateBillResponse]
	getBill           *connect.Client[api.GetBillRequest, api.GetBillResponse]
	deleteBill        *connect.Client[api.DeleteBillRequest, api.DeleteBillResponse]
	listBills         *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	addParticipant    *connect.Client[api.AddParticipantRequest, api.AddParticipantResponse]
	renameParticipant *connect.Client[api.RenameParticipantRequest, api.RenameParticipantResponse]
	removeParticipant *connect.Client[api.RemoveParticipantRequest, api.RemoveParticipantResponse]
	addItem           *connect.Client[api.AddItemRequest, api.AddItemResponse]
	updateItem        *connect.Client[api.UpdateItemRequest, api.UpdateItemResponse]
	removeItem        *connect.Client[api.RemoveItemRequest, api.RemoveItemResponse]
	setAssignment     *connect.Client[api.SetAssignmentRequest, api.SetAssignmentResponse]
	setPolicy         *connect.Client[api.SetPolicyRequest, api.SetPolicyResponse]
	importReceipt     *connect.Client[api.ImportReceiptRequest, api.ImportReceiptResponse]
	settle            *connect.Client[api.SettleRequest, api.SettleResponse]
	getBalances       *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
}

// CreateBill calls patungan.v1.BillService.CreateBill.
func (c *billServiceClient) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

// GetBill calls patungan.v1.BillService.GetBill.
func (c *billServiceClient) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

// DeleteBill calls patungan.v1.BillService.DeleteBill.
func (c *billServiceClient) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}

// ListBills calls patungan.v1.BillService.ListBills.
func (c *billServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// AddParticipant calls patungan.v1.BillService.AddParticipant.
func (c *billServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

// RenameParticipant calls patungan.v1.BillService.RenameParticipant.
func (c *billServiceClient) RenameParticipant(ctx context.Context, req *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error) {
	return c.renameParticipant.CallUnary(ctx, req)
}

// RemoveParticipant calls patungan.v1.BillService.RemoveParticipant.
func (c *billServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

// AddItem calls patungan.v1.BillService.AddItem.
func (c *billServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

// UpdateItem calls patungan.v1.BillService.UpdateItem.
func (c *billServiceClient) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

// RemoveItem calls patungan.v1.BillService.RemoveItem.
func (c *billServiceClient) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error) {
	return c.removeItem.CallUnary(ctx, req)
}

// SetAssignment calls patungan.v1.BillService.SetAssignment.
func (c *billServiceClient) SetAssignment(ctx context.Context, req *connect.Request[api.SetAssignmentRequest]) (*connect.Response[api.SetAssignmentResponse], error) {
	return c.setAssignment.CallUnary(ctx, req)
}

// SetPolicy calls patungan.v1.BillService.SetPolicy.
func (c *billServiceClient) SetPolicy(ctx context.Context, req *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error) {
	return c.setPolicy.CallUnary(ctx, req)
}

// ImportReceipt calls patungan.v1.BillService.ImportReceipt.
func (c *billServiceClient) ImportReceipt(ctx context.Context, req *connect.Request[api.ImportReceiptRequest]) (*connect.Response[api.ImportReceiptResponse], error) {
	return c.importReceipt.CallUnary(ctx, req)
}

// Settle calls patungan.v1.BillService.Settle.
func (c *billServiceClient) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}

// GetBalances calls patungan.v1.BillService.GetBalances.
func (c *billServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

// BillServiceHandler is an implementation of the patungan.v1.BillService service.
type BillServiceHandler interface {
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	RenameParticipant(context.Context, *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error)
	SetAssignment(context.Context, *connect.Request[api.SetAssignmentRequest]) (*connect.Response[api.SetAssignmentResponse], error)
	SetPolicy(context.Context, *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error)
	ImportReceipt(context.Context, *connect.Request[api.ImportReceiptRequest]) (*connect.Response[api.ImportReceiptResponse], error)
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	createBillHandler := connect.NewUnaryHandler(
		BillServiceCreateBillProcedure,
		svc.CreateBill,
		opts...,
	)
	getBillHandler := connect.NewUnaryHandler(
		BillServiceGetBillProcedure,
		svc.GetBill,
		opts...,
	)
	deleteBillHandler := connect.NewUnaryHandler(
		BillServiceDeleteBillProcedure,
		svc.DeleteBill,
		opts...,
	)
	listBillsHandler := connect.NewUnaryHandler(
		BillServiceListBillsProcedure,
		svc.ListBills,
		opts...,
	)
	addParticipantHandler := connect.NewUnaryHandler(
		BillServiceAddParticipantProcedure,
		svc.AddParticipant,
		opts...,
	)
	renameParticipantHandler := connect.NewUnaryHandler(
		BillServiceRenameParticipantProcedure,
		svc.RenameParticipant,
		opts...,
	)
	removeParticipantHandler := connect.NewUnaryHandler(
		BillServiceRemoveParticipantProcedure,
		svc.RemoveParticipant,
		opts...,
	)
	addItemHandler := connect.NewUnaryHandler(
		BillServiceAddItemProcedure,
		svc.AddItem,
		opts...,
	)
	updateItemHandler := connect.NewUnaryHandler(
		BillServiceUpdateItemProcedure,
		svc.UpdateItem,
		opts...,
	)
	removeItemHandler := connect.NewUnaryHandler(
		BillServiceRemoveItemProcedure,
		svc.RemoveItem,
		opts...,
	)
	setAssignmentHandler := connect.NewUnaryHandler(
		BillServiceSetAssignmentProcedure,
		svc.SetAssignment,
		opts...,
	)
	setPolicyHandler := connect.NewUnaryHandler(
		BillServiceSetPolicyProcedure,
		svc.SetPolicy,
		opts...,
	)
	importReceiptHandler := connect.NewUnaryHandler(
		BillServiceImportReceiptProcedure,
		svc.ImportReceipt,
		opts...,
	)
	settleHandler := connect.NewUnaryHandler(
		BillServiceSettleProcedure,
		svc.Settle,
		opts...,
	)
	getBalancesHandler := connect.NewUnaryHandler(
		BillServiceGetBalancesProcedure,
		svc.GetBalances,
		opts...,
	)
	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServiceCreateBillProcedure:
			createBillHandler.ServeHTTP(w, r)
		case BillServiceGetBillProcedure:
			getBillHandler.ServeHTTP(w, r)
		case BillServiceDeleteBillProcedure:
			deleteBillHandler.ServeHTTP(w, r)
		case BillServiceListBillsProcedure:
			listBillsHandler.ServeHTTP(w, r)
		case BillServiceAddParticipantProcedure:
			addParticipantHandler.ServeHTTP(w, r)
		case BillServiceRenameParticipantProcedure:
			renameParticipantHandler.ServeHTTP(w, r)
		case BillServiceRemoveParticipantProcedure:
			removeParticipantHandler.ServeHTTP(w, r)
		case BillServiceAddItemProcedure:
			addItemHandler.ServeHTTP(w, r)
		case BillServiceUpdateItemProcedure:
			updateItemHandler.ServeHTTP(w, r)
		case BillServiceRemoveItemProcedure:
			removeItemHandler.ServeHTTP(w, r)
		case BillServiceSetAssignmentProcedure:
			setAssignmentHandler.ServeHTTP(w, r)
		case BillServiceSetPolicyProcedure:
			setPolicyHandler.ServeHTTP(w, r)
		case BillServiceImportReceiptProcedure:
			importReceiptHandler.ServeHTTP(w, r)
		case BillServiceSettleProcedure:
			settleHandler.ServeHTTP(w, r)
		case BillServiceGetBalancesProcedure:
			getBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedBillServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBillServiceHandler struct{}

func (UnimplementedBillServiceHandler) CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.CreateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.GetBill is not implemented"))
}

func (UnimplementedBillServiceHandler) DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.DeleteBill is not implemented"))
}

func (UnimplementedBillServiceHandler) ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.ListBills is not implemented"))
}

func (UnimplementedBillServiceHandler) AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.AddParticipant is not implemented"))
}

func (UnimplementedBillServiceHandler) RenameParticipant(context.Context, *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.RenameParticipant is not implemented"))
}

func (UnimplementedBillServiceHandler) RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.RemoveParticipant is not implemented"))
}

func (UnimplementedBillServiceHandler) AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.AddItem is not implemented"))
}

func (UnimplementedBillServiceHandler) UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.UpdateItem is not implemented"))
}

func (UnimplementedBillServiceHandler) RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.RemoveItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.RemoveItem is not implemented"))
}

func (UnimplementedBillServiceHandler) SetAssignment(context.Context, *connect.Request[api.SetAssignmentRequest]) (*connect.Response[api.SetAssignmentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.SetAssignment is not implemented"))
}

func (UnimplementedBillServiceHandler) SetPolicy(context.Context, *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.SetPolicy is not implemented"))
}

func (UnimplementedBillServiceHandler) ImportReceipt(context.Context, *connect.Request[api.ImportReceiptRequest]) (*connect.Response[api.ImportReceiptResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.ImportReceipt is not implemented"))
}

func (UnimplementedBillServiceHandler) Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.Settle is not implemented"))
}

func (UnimplementedBillServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("patungan.v1.BillService.GetBalances is not implemented"))
}
