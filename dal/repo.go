package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"github.com/spaolacci/murmur3"
	"masto_bridge/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_repo.go -package mocks masto_bridge/dal IRepo

const schemaVer = 2

//go:embed scripts/*
var scripts embed.FS

var ErrAccountExists = errors.New("account already exists")

type IRepo interface {
	InitUpdateDb()
	AddAccount(acct *Account) error
	GetAccount(addr string) (*Account, error)
	GetAccountByChat(chatId int64) (*Account, error)
	GetAccounts() ([]*Account, error)
	CountAccounts(url string) (total int, onInstance int, err error)
	UpdateToken(addr, token string) error
	DeleteAccount(addr string) (dmChatIds []int64, err error)
	AdvanceWatermark(addr string, kind FeedKind, itemId string) error
	IsDelivered(addr string, kind FeedKind, key string) (bool, error)
	RecordDelivery(addr string, kind FeedKind, itemId, key string, when time.Time) error
	PurgeDelivered(before time.Time) (int64, error)
	GetClient(url string) (*Client, error)
	AddClient(client *Client) error
	GetDmChat(addr, contact string) (*DmChat, error)
	GetDmChatById(chatId int64) (*DmChat, error)
	GetDmChats(addr string) ([]*DmChat, error)
	AddDmChat(dmChat *DmChat) error
	DeleteDmChat(chatId int64) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000&_foreign_keys=1"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func isDuplicateKey(err error) bool {
	// MySQL: mysql.MySQLError; mysqlErr.Number == 1062
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			return true
		}
	}
	return false
}

func getItemHash(kind FeedKind, itemId string) int64 {
	str := string(kind) + "\t" + itemId
	hasher := murmur3.New64()
	_, _ = hasher.Write([]byte(str))
	return int64(hasher.Sum64())
}

const selectAccountCols = `SELECT id, created_at, addr, acct, masto_id, url, token, home_chat, notif_chat,
		last_home, last_notif FROM accounts`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	var res Account
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Addr, &res.User, &res.MastoId, &res.Url, &res.Token,
		&res.HomeChat, &res.NotifChat, &res.LastHome, &res.LastNotif)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) AddAccount(acct *Account) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}
	_, err := repo.db.Exec(`INSERT INTO accounts
		(created_at, addr, acct, masto_id, url, token, home_chat, notif_chat, last_home, last_notif)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		acct.CreatedAt, acct.Addr, acct.User, acct.MastoId, acct.Url, acct.Token,
		acct.HomeChat, acct.NotifChat, acct.LastHome, acct.LastNotif)
	if err != nil && isDuplicateKey(err) {
		return ErrAccountExists
	}
	return err
}

func (repo *Repo) GetAccount(addr string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(addr)
}

func (repo *Repo) getAccount(addr string) (*Account, error) {
	res, err := scanAccount(repo.db.QueryRow(selectAccountCols+` WHERE addr=?`, addr))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

func (repo *Repo) GetAccountByChat(chatId int64) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	res, err := scanAccount(repo.db.QueryRow(selectAccountCols+` WHERE home_chat=? OR notif_chat=?`, chatId, chatId))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

func (repo *Repo) GetAccounts() ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(selectAccountCols + ` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Account
	for rows.Next() {
		var acct *Account
		if acct, err = scanAccount(rows); err != nil {
			return nil, err
		}
		res = append(res, acct)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) CountAccounts(url string) (total int, onInstance int, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(CASE WHEN url=? THEN 1 ELSE 0 END), 0) FROM accounts`, url)
	err = row.Scan(&total, &onInstance)
	return
}

func (repo *Repo) UpdateToken(addr, token string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET token=? WHERE addr=?`, token, addr)
	return err
}

func (repo *Repo) DeleteAccount(addr string) (dmChatIds []int64, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	if tx, err = repo.db.Begin(); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var rows *sql.Rows
	if rows, err = tx.Query(`SELECT chat_id FROM dm_chats WHERE acc_addr=?`, addr); err != nil {
		return nil, err
	}
	for rows.Next() {
		var chatId int64
		if err = rows.Scan(&chatId); err != nil {
			_ = rows.Close()
			return nil, err
		}
		dmChatIds = append(dmChatIds, chatId)
	}
	_ = rows.Close()

	if _, err = tx.Exec(`DELETE FROM dm_chats WHERE acc_addr=?`, addr); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(`DELETE FROM delivered WHERE acc_addr=?`, addr); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(`DELETE FROM accounts WHERE addr=?`, addr); err != nil {
		return nil, err
	}
	err = tx.Commit()
	return
}

func watermarkColumn(kind FeedKind) (string, error) {
	switch kind {
	case FkHome:
		return "last_home", nil
	case FkNotif:
		return "last_notif", nil
	}
	return "", fmt.Errorf("unknown feed kind: %s", kind)
}

// Moves the feed's watermark to itemId, unless it is already at or past it.
func advanceWatermark(tx *sql.Tx, addr string, kind FeedKind, itemId string) error {
	col, err := watermarkColumn(kind)
	if err != nil {
		return err
	}
	var current string
	row := tx.QueryRow(`SELECT `+col+` FROM accounts WHERE addr=?`, addr)
	if err = row.Scan(&current); err != nil {
		// Account was logged out while we were busy: nothing to advance
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	if !shared.IsNewerId(itemId, current) {
		return nil
	}
	_, err = tx.Exec(`UPDATE accounts SET `+col+`=? WHERE addr=?`, itemId, addr)
	return err
}

func (repo *Repo) AdvanceWatermark(addr string, kind FeedKind, itemId string) (err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	if tx, err = repo.db.Begin(); err != nil {
		return err
	}
	if err = advanceWatermark(tx, addr, kind, itemId); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// IsDelivered tells if an item with this key was shown in the feed within the retention period.
func (repo *Repo) IsDelivered(addr string, kind FeedKind, key string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM delivered WHERE acc_addr=? AND kind=? AND item_hash=?`,
		addr, string(kind), getItemHash(kind, key))
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

// RecordDelivery logs key as shown and advances the feed's watermark to itemId in one transaction.
func (repo *Repo) RecordDelivery(addr string, kind FeedKind, itemId, key string, when time.Time) (err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	if tx, err = repo.db.Begin(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(`INSERT INTO delivered (acc_addr, kind, item_hash, delivered_at) VALUES (?, ?, ?, ?)`,
		addr, string(kind), getItemHash(kind, key), when.UTC())
	// Duplicate key: shown before; still fine to move the watermark
	if err != nil && !isDuplicateKey(err) {
		return err
	}
	if err = advanceWatermark(tx, addr, kind, itemId); err != nil {
		return err
	}
	err = tx.Commit()
	return
}

func (repo *Repo) PurgeDelivered(before time.Time) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM delivered WHERE delivered_at<?`, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (repo *Repo) GetClient(url string) (*Client, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT url, client_id, secret FROM clients WHERE url=?`, url)
	var res Client
	if err := row.Scan(&res.Url, &res.Id, &res.Secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) AddClient(client *Client) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO clients (url, client_id, secret) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET client_id=excluded.client_id, secret=excluded.secret`,
		client.Url, client.Id, client.Secret)
	return err
}

func scanDmChat(row rowScanner) (*DmChat, error) {
	var res DmChat
	if err := row.Scan(&res.ChatId, &res.Contact, &res.AccAddr); err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetDmChat(addr, contact string) (*DmChat, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	res, err := scanDmChat(repo.db.QueryRow(
		`SELECT chat_id, contact, acc_addr FROM dm_chats WHERE acc_addr=? AND contact=?`, addr, contact))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

func (repo *Repo) GetDmChatById(chatId int64) (*DmChat, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	res, err := scanDmChat(repo.db.QueryRow(
		`SELECT chat_id, contact, acc_addr FROM dm_chats WHERE chat_id=?`, chatId))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return res, err
}

func (repo *Repo) GetDmChats(addr string) ([]*DmChat, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT chat_id, contact, acc_addr FROM dm_chats WHERE acc_addr=? ORDER BY contact`, addr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*DmChat
	for rows.Next() {
		var dmChat *DmChat
		if dmChat, err = scanDmChat(rows); err != nil {
			return nil, err
		}
		res = append(res, dmChat)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddDmChat(dmChat *DmChat) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO dm_chats (chat_id, contact, acc_addr) VALUES (?, ?, ?)`,
		dmChat.ChatId, dmChat.Contact, dmChat.AccAddr)
	return err
}

func (repo *Repo) DeleteDmChat(chatId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM dm_chats WHERE chat_id=?`, chatId)
	return err
}
