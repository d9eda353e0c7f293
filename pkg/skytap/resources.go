package skytap

// VM represents a virtual machine inside an environment or template.
type VM struct {
	Resource

	Name             string      `json:"name"                        yaml:"name"`
	Runstate         Runstate    `json:"runstate"                    yaml:"runstate"`
	Error            string      `json:"error,omitempty"             yaml:"error,omitempty"`
	AssetID          string      `json:"asset_id,omitempty"          yaml:"asset_id,omitempty"`
	ConfigurationURL string      `json:"configuration_url,omitempty" yaml:"configuration_url,omitempty"`
	TemplateURL      string      `json:"template_url,omitempty"      yaml:"template_url,omitempty"`
	Hardware         *Hardware   `json:"hardware,omitempty"          yaml:"hardware,omitempty"`
	Interfaces       []Interface `json:"interfaces,omitempty"        yaml:"interfaces,omitempty"`
}

// Hardware describes the virtual hardware of a VM.
type Hardware struct {
	CPUs          int    `json:"cpus"                      yaml:"cpus"`
	CPUsPerSocket int    `json:"cpus_per_socket,omitempty" yaml:"cpus_per_socket,omitempty"`
	RAM           int    `json:"ram"                       yaml:"ram"`
	SVMs          int    `json:"svms,omitempty"            yaml:"svms,omitempty"`
	Storage       int64  `json:"storage,omitempty"         yaml:"storage,omitempty"`
	GuestOS       string `json:"guestOS,omitempty"         yaml:"guestOS,omitempty"`
	Architecture  string `json:"architecture,omitempty"    yaml:"architecture,omitempty"`
}

// Network represents a virtual network inside an environment.
type Network struct {
	Resource

	Name         string `json:"name"                    yaml:"name"`
	NetworkType  string `json:"network_type,omitempty"  yaml:"network_type,omitempty"`
	Subnet       string `json:"subnet,omitempty"        yaml:"subnet,omitempty"`
	SubnetAddr   string `json:"subnet_addr,omitempty"   yaml:"subnet_addr,omitempty"`
	SubnetSize   int    `json:"subnet_size,omitempty"   yaml:"subnet_size,omitempty"`
	Gateway      string `json:"gateway,omitempty"       yaml:"gateway,omitempty"`
	PrimaryDNS   string `json:"primary_dns,omitempty"   yaml:"primary_dns,omitempty"`
	SecondaryDNS string `json:"secondary_dns,omitempty" yaml:"secondary_dns,omitempty"`
	Domain       string `json:"domain,omitempty"        yaml:"domain,omitempty"`
	Tunnelable   bool   `json:"tunnelable,omitempty"    yaml:"tunnelable,omitempty"`
}

// Interface represents a network adapter attached to a VM.
type Interface struct {
	Resource

	IP        string             `json:"ip,omitempty"         yaml:"ip,omitempty"`
	Hostname  string             `json:"hostname,omitempty"   yaml:"hostname,omitempty"`
	MAC       string             `json:"mac,omitempty"        yaml:"mac,omitempty"`
	NICType   string             `json:"nic_type,omitempty"   yaml:"nic_type,omitempty"`
	NetworkID string             `json:"network_id,omitempty" yaml:"network_id,omitempty"`
	Services  []PublishedService `json:"services,omitempty"   yaml:"services,omitempty"`
	PublicIPs []PublicIP         `json:"public_ips,omitempty" yaml:"public_ips,omitempty"`
}

// PublishedService exposes one internal port of a VM interface on a
// dynamically assigned public address and port.
type PublishedService struct {
	ID           string `json:"id"                      yaml:"id"`
	InternalPort int    `json:"internal_port"           yaml:"internal_port"`
	ExternalIP   string `json:"external_ip,omitempty"   yaml:"external_ip,omitempty"`
	ExternalPort int    `json:"external_port,omitempty" yaml:"external_port,omitempty"`
}

// PublishSet represents a published view of selected environment VMs.
type PublishSet struct {
	Resource

	Name           string         `json:"name"                       yaml:"name"`
	PublishSetType string         `json:"publish_set_type,omitempty" yaml:"publish_set_type,omitempty"`
	DesktopsURL    string         `json:"desktops_url,omitempty"     yaml:"desktops_url,omitempty"`
	Password       *string        `json:"password,omitempty"         yaml:"password,omitempty"`
	RuntimeLimit   *int           `json:"runtime_limit,omitempty"    yaml:"runtime_limit,omitempty"`
	ExpirationDate string         `json:"expiration_date,omitempty"  yaml:"expiration_date,omitempty"`
	VMs            []PublishSetVM `json:"vms,omitempty"              yaml:"vms,omitempty"`
}

// PublishSetVM is one VM entry within a publish set.
type PublishSetVM struct {
	VMRef  string `json:"vm_ref"           yaml:"vm_ref"`
	Access string `json:"access,omitempty" yaml:"access,omitempty"`
	Name   string `json:"name,omitempty"   yaml:"name,omitempty"`
}

// VPN represents a site-to-site VPN connection configured for the account.
type VPN struct {
	Resource

	Name          string   `json:"name"                     yaml:"name"`
	Enabled       bool     `json:"enabled"                  yaml:"enabled"`
	NATEnabled    bool     `json:"nat_enabled,omitempty"    yaml:"nat_enabled,omitempty"`
	RemotePeerIP  string   `json:"remote_peer_ip,omitempty" yaml:"remote_peer_ip,omitempty"`
	RemoteSubnets []string `json:"remote_subnets,omitempty" yaml:"remote_subnets,omitempty"`
	LocalPeerIP   string   `json:"local_peer_ip,omitempty"  yaml:"local_peer_ip,omitempty"`
	Region        string   `json:"region,omitempty"         yaml:"region,omitempty"`
}

// PublicIP represents a static public IP address owned by the account.
type PublicIP struct {
	ID      string `json:"id"                yaml:"id"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Region  string `json:"region,omitempty"  yaml:"region,omitempty"`
	VPNID   string `json:"vpn_id,omitempty"  yaml:"vpn_id,omitempty"`
}
