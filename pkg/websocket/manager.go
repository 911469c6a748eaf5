package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client 一个用户的WebSocket连接
type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// NewClient 创建连接，Send 带缓冲
func NewClient(userID uint, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
}

// Manager 管理所有在线用户的连接，每个用户只保留最新的一条
type Manager struct {
	clients map[uint]*Client
	lock    sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{clients: make(map[uint]*Client)}
}

// AddClient 添加连接，同一用户的旧连接会被关闭
func (m *Manager) AddClient(client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if old, ok := m.clients[client.UserID]; ok && old != client {
		close(old.Send)
	}
	m.clients[client.UserID] = client
}

// RemoveClient 移除连接，只有当前登记的就是该连接时才移除
// 返回false表示该连接已被同一用户的新连接替换
func (m *Manager) RemoveClient(client *Client) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	cur, ok := m.clients[client.UserID]
	if !ok || cur != client {
		return false
	}
	close(cur.Send)
	delete(m.clients, client.UserID)
	return true
}

// SendToUser 推送给在线用户，返回是否成功投递到发送队列
// 持有读锁发送，保证不会向已关闭的通道写入
func (m *Manager) SendToUser(userID uint, msg []byte) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	client, ok := m.clients[userID]
	if !ok {
		return false
	}
	select {
	case client.Send <- msg:
		return true
	default:
		return false
	}
}

// IsOnline 判断用户是否在线
func (m *Manager) IsOnline(userID uint) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// OnlineCount 当前连接数
func (m *Manager) OnlineCount() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.clients)
}
